package repository

import (
	"github.com/finversity/finversity-backend/internal/models"
	"gorm.io/gorm"
)

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{
		db: db,
	}
}

func (r *CartRepository) Exists(userID, productID uint, productType string) (bool, error) {
	var count int64
	err := r.db.Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ? AND product_type = ?", userID, productID, productType).
		Count(&count).Error
	return count > 0, err
}

func (r *CartRepository) Create(item *models.CartItem) error {
	return r.db.Create(item).Error
}

func (r *CartRepository) GetByUser(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *CartRepository) DeleteByID(userID, id uint) error {
	res := r.db.Where("user_id = ?", userID).Delete(&models.CartItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CartRepository) Count(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
