package service

import (
	"mime/multipart"
	"path"

	"github.com/finversity/finversity-backend/internal/models"
	"github.com/finversity/finversity-backend/internal/repository"
	"github.com/finversity/finversity-backend/pkg/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CourseService struct {
	courseRepo *repository.CourseRepository
	storage    storage.StorageService
	logger     *zap.Logger
}

func NewCourseService(courseRepo *repository.CourseRepository, store storage.StorageService, logger *zap.Logger) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		storage:    store,
		logger:     logger,
	}
}

func (s *CourseService) GetCourses() ([]models.Course, error) {
	return s.courseRepo.GetAll()
}

func (s *CourseService) GetCourse(id uint) (*models.Course, error) {
	return s.courseRepo.GetByID(id)
}

func (s *CourseService) CreateCourse(req models.CourseRequest, thumbnail *multipart.FileHeader) (*models.Course, error) {
	course := models.Course{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		Price:            req.Price,
	}

	if thumbnail != nil {
		key, err := uploadFile(s.storage, "courses", thumbnail)
		if err != nil {
			return nil, err
		}
		course.Thumbnail = key
	}

	if err := s.courseRepo.Create(&course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *CourseService) UpdateCourse(id uint, req models.CourseRequest, thumbnail *multipart.FileHeader) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	course.Title = req.Title
	course.ShortDescription = req.ShortDescription
	course.Description = req.Description
	course.Price = req.Price

	if thumbnail != nil {
		key, err := uploadFile(s.storage, "courses", thumbnail)
		if err != nil {
			return nil, err
		}
		old := course.Thumbnail
		course.Thumbnail = key

		if old != "" {
			if err := s.storage.Delete(old); err != nil {
				s.logger.Warn("failed to delete replaced thumbnail",
					zap.String("key", old),
					zap.Error(err),
				)
			}
		}
	}

	if err := s.courseRepo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) DeleteCourse(id uint) error {
	course, err := s.courseRepo.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.courseRepo.Delete(id); err != nil {
		return err
	}

	// Media cleanup is best-effort; the record is already gone.
	if course.Thumbnail != "" {
		if err := s.storage.Delete(course.Thumbnail); err != nil {
			s.logger.Warn("failed to delete course thumbnail", zap.String("key", course.Thumbnail), zap.Error(err))
		}
	}
	for _, module := range course.Modules {
		if module.Video == "" {
			continue
		}
		if err := s.storage.Delete(module.Video); err != nil {
			s.logger.Warn("failed to delete module video", zap.String("key", module.Video), zap.Error(err))
		}
	}

	return nil
}

func (s *CourseService) GetModules(courseID uint) ([]models.CourseModule, error) {
	if _, err := s.courseRepo.GetByID(courseID); err != nil {
		return nil, err
	}
	return s.courseRepo.GetModulesByCourse(courseID)
}

func (s *CourseService) CreateModule(courseID uint, req models.CourseModuleRequest, video *multipart.FileHeader) (*models.CourseModule, error) {
	if _, err := s.courseRepo.GetByID(courseID); err != nil {
		return nil, err
	}

	module := models.CourseModule{
		CourseID:    courseID,
		Title:       req.Title,
		Description: req.Description,
		Position:    req.Position,
	}

	if video != nil {
		key, err := uploadFile(s.storage, "modules", video)
		if err != nil {
			return nil, err
		}
		module.Video = key
	}

	if err := s.courseRepo.CreateModule(&module); err != nil {
		return nil, err
	}
	return &module, nil
}

func (s *CourseService) UpdateModule(id uint, req models.CourseModuleRequest, video *multipart.FileHeader) (*models.CourseModule, error) {
	module, err := s.courseRepo.GetModuleByID(id)
	if err != nil {
		return nil, err
	}

	module.Title = req.Title
	module.Description = req.Description
	module.Position = req.Position

	if video != nil {
		key, err := uploadFile(s.storage, "modules", video)
		if err != nil {
			return nil, err
		}
		old := module.Video
		module.Video = key

		if old != "" {
			if err := s.storage.Delete(old); err != nil {
				s.logger.Warn("failed to delete replaced video", zap.String("key", old), zap.Error(err))
			}
		}
	}

	if err := s.courseRepo.UpdateModule(module); err != nil {
		return nil, err
	}
	return module, nil
}

func (s *CourseService) DeleteModule(id uint) error {
	module, err := s.courseRepo.GetModuleByID(id)
	if err != nil {
		return err
	}

	if err := s.courseRepo.DeleteModule(id); err != nil {
		return err
	}

	if module.Video != "" {
		if err := s.storage.Delete(module.Video); err != nil {
			s.logger.Warn("failed to delete module video", zap.String("key", module.Video), zap.Error(err))
		}
	}
	return nil
}

// uploadFile stores a multipart upload under a per-resource prefix with a
// generated name, preserving the original extension.
func uploadFile(store storage.StorageService, prefix string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	key := prefix + "/" + uuid.NewString() + path.Ext(fh.Filename)
	if err := store.Upload(key, src); err != nil {
		return "", err
	}
	return key, nil
}
