package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/finversity/finversity-backend/internal/models"
	"github.com/finversity/finversity-backend/internal/repository"
)

func newPackageService(t *testing.T) (*PackageService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewPackageService(repository.NewPackageRepository(db), repository.NewPackagePurchaseRepository(db))
	return svc, db
}

func TestCreatePackageWithSubRecords(t *testing.T) {
	svc, _ := newPackageService(t)

	req := models.PackageRequest{
		Title:    "Wealth Builder",
		Price:    4999,
		Duration: "12 months",
		Includes: []string{"All courses", "Monthly webinar"},
	}
	req.FAQs = append(req.FAQs, struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}{Question: "Is it refundable?", Answer: "Within 7 days."})

	pkg, err := svc.CreatePackage(req)
	require.NoError(t, err)
	require.True(t, pkg.IsActive)

	got, err := svc.GetPackage(pkg.ID)
	require.NoError(t, err)
	require.Len(t, got.Includes, 2)
	require.Len(t, got.FAQs, 1)
	require.Equal(t, "Is it refundable?", got.FAQs[0].Question)
}

func TestUpdatePackageReplacesSubRecords(t *testing.T) {
	svc, db := newPackageService(t)

	pkg, err := svc.CreatePackage(models.PackageRequest{
		Title:    "Starter",
		Price:    999,
		Includes: []string{"One course"},
	})
	require.NoError(t, err)

	updated, err := svc.UpdatePackage(pkg.ID, models.PackageRequest{
		Title:    "Starter Plus",
		Price:    1299,
		Includes: []string{"Two courses", "Community access"},
	})
	require.NoError(t, err)
	require.Equal(t, "Starter Plus", updated.Title)
	require.Len(t, updated.Includes, 2)

	// Old sub-records are gone, not appended to.
	var includeCount int64
	require.NoError(t, db.Model(&models.PackageInclude{}).Where("package_id = ?", pkg.ID).Count(&includeCount).Error)
	require.EqualValues(t, 2, includeCount)
}

func TestRecordPackagePurchase(t *testing.T) {
	svc, _ := newPackageService(t)

	pkg, err := svc.CreatePackage(models.PackageRequest{Title: "Pro", Price: 2999})
	require.NoError(t, err)

	purchase, err := svc.RecordPurchase(models.PackagePurchaseRequest{
		UserID:        3,
		PackageID:     pkg.ID,
		Amount:        2999,
		TransactionID: "pay_pkg_1",
	})
	require.NoError(t, err)
	require.NotZero(t, purchase.ID)
	require.Equal(t, "pay_pkg_1", purchase.TransactionID)

	details, err := svc.GetUserPurchases(3)
	require.NoError(t, err)
	require.Len(t, details, 1)
	require.Equal(t, "Pro", details[0].PackageTitle)
	require.InDelta(t, 2999, details[0].PackagePrice, 0.001)
}

func TestRecordPackagePurchaseUnknownPackage(t *testing.T) {
	svc, db := newPackageService(t)

	_, err := svc.RecordPurchase(models.PackagePurchaseRequest{
		UserID:        3,
		PackageID:     99,
		Amount:        100,
		TransactionID: "pay_missing",
	})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var count int64
	require.NoError(t, db.Model(&models.PackagePurchase{}).Count(&count).Error)
	require.Zero(t, count)
}
