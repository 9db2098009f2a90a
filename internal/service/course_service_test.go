package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/finversity/finversity-backend/internal/models"
	"github.com/finversity/finversity-backend/internal/repository"
	"github.com/finversity/finversity-backend/pkg/storage"
)

func newCourseFixture(t *testing.T) (*CourseService, *storage.LocalStorage, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)

	store, err := storage.NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	svc := NewCourseService(repository.NewCourseRepository(db), store, zap.NewNop())
	return svc, store, db
}

func TestCreateCourseStoresThumbnail(t *testing.T) {
	svc, store, _ := newCourseFixture(t)

	course, err := svc.CreateCourse(models.CourseRequest{
		Title: "Stock Market Basics",
		Price: 999,
	}, multipartFile(t, "thumb.png", []byte("png-bytes")))
	require.NoError(t, err)
	require.NotEmpty(t, course.Thumbnail)
	require.True(t, store.Exists(course.Thumbnail))
}

func TestCreateCourseWithoutThumbnail(t *testing.T) {
	svc, _, _ := newCourseFixture(t)

	course, err := svc.CreateCourse(models.CourseRequest{Title: "No Media", Price: 100}, nil)
	require.NoError(t, err)
	require.Empty(t, course.Thumbnail)
}

func TestUpdateCourseReplacesThumbnail(t *testing.T) {
	svc, store, _ := newCourseFixture(t)

	course, err := svc.CreateCourse(models.CourseRequest{
		Title: "Stock Market Basics",
		Price: 999,
	}, multipartFile(t, "old.png", []byte("old")))
	require.NoError(t, err)
	oldKey := course.Thumbnail

	updated, err := svc.UpdateCourse(course.ID, models.CourseRequest{
		Title: "Stock Market Basics v2",
		Price: 1099,
	}, multipartFile(t, "new.png", []byte("new")))
	require.NoError(t, err)
	require.NotEqual(t, oldKey, updated.Thumbnail)
	require.True(t, store.Exists(updated.Thumbnail))
	require.False(t, store.Exists(oldKey), "replaced thumbnail must be deleted")
}

func TestUpdateCourseKeepsThumbnailWhenNoneUploaded(t *testing.T) {
	svc, store, _ := newCourseFixture(t)

	course, err := svc.CreateCourse(models.CourseRequest{
		Title: "Keep Media",
		Price: 999,
	}, multipartFile(t, "thumb.png", []byte("png")))
	require.NoError(t, err)

	updated, err := svc.UpdateCourse(course.ID, models.CourseRequest{Title: "Renamed", Price: 999}, nil)
	require.NoError(t, err)
	require.Equal(t, course.Thumbnail, updated.Thumbnail)
	require.True(t, store.Exists(updated.Thumbnail))
}

func TestDeleteCourseRemovesMedia(t *testing.T) {
	svc, store, _ := newCourseFixture(t)

	course, err := svc.CreateCourse(models.CourseRequest{
		Title: "Doomed Course",
		Price: 999,
	}, multipartFile(t, "thumb.png", []byte("png")))
	require.NoError(t, err)

	module, err := svc.CreateModule(course.ID, models.CourseModuleRequest{
		Title:    "Intro",
		Position: 1,
	}, multipartFile(t, "intro.mp4", []byte("video")))
	require.NoError(t, err)
	require.True(t, store.Exists(module.Video))

	require.NoError(t, svc.DeleteCourse(course.ID))

	_, err = svc.GetCourse(course.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.False(t, store.Exists(course.Thumbnail))
	require.False(t, store.Exists(module.Video))
}

func TestCourseModulesOrderedByPosition(t *testing.T) {
	svc, _, _ := newCourseFixture(t)

	course, err := svc.CreateCourse(models.CourseRequest{Title: "Ordered", Price: 500}, nil)
	require.NoError(t, err)

	_, err = svc.CreateModule(course.ID, models.CourseModuleRequest{Title: "Second", Position: 2}, nil)
	require.NoError(t, err)
	_, err = svc.CreateModule(course.ID, models.CourseModuleRequest{Title: "First", Position: 1}, nil)
	require.NoError(t, err)

	modules, err := svc.GetModules(course.ID)
	require.NoError(t, err)
	require.Len(t, modules, 2)
	require.Equal(t, "First", modules[0].Title)
	require.Equal(t, "Second", modules[1].Title)
}

func TestCreateModuleForMissingCourse(t *testing.T) {
	svc, _, _ := newCourseFixture(t)

	_, err := svc.CreateModule(42, models.CourseModuleRequest{Title: "Orphan"}, nil)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
