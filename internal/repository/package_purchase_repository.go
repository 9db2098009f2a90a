package repository

import (
	"github.com/finversity/finversity-backend/internal/models"
	"gorm.io/gorm"
)

type PackagePurchaseRepository struct {
	db *gorm.DB
}

func NewPackagePurchaseRepository(db *gorm.DB) *PackagePurchaseRepository {
	return &PackagePurchaseRepository{
		db: db,
	}
}

func (r *PackagePurchaseRepository) Create(purchase *models.PackagePurchase) error {
	return r.db.Create(purchase).Error
}

// GetByUser returns the user's package ledger rows joined with each
// package's title and current price.
func (r *PackagePurchaseRepository) GetByUser(userID uint) ([]models.PackagePurchaseDetail, error) {
	var details []models.PackagePurchaseDetail
	err := r.db.Model(&models.PackagePurchase{}).
		Select("package_purchases.*, packages.title AS package_title, packages.price AS package_price").
		Joins("JOIN packages ON packages.id = package_purchases.package_id").
		Where("package_purchases.user_id = ?", userID).
		Order("package_purchases.created_at DESC").
		Scan(&details).Error
	return details, err
}
