package repository

import (
	"time"

	"github.com/finversity/finversity-backend/internal/models"
	"gorm.io/gorm"
)

type PurchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{
		db: db,
	}
}

// RecordItems writes one Purchase row per line item and removes the matching
// cart row inside a single transaction. Either every pair succeeds or the
// whole recording rolls back.
func (r *PurchaseRepository) RecordItems(userID uint, paymentID, orderID string, items []models.PurchaseLineItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			purchase := models.Purchase{
				UserID:        userID,
				ProductID:     item.ProductID,
				ProductType:   item.ProductType,
				PaymentID:     paymentID,
				OrderID:       orderID,
				ProductAmount: item.Amount,
			}
			if err := tx.Create(&purchase).Error; err != nil {
				return err
			}

			// Buy-now purchases may have no cart row; delete is a no-op then.
			if err := tx.Where("user_id = ? AND product_id = ? AND product_type = ?",
				userID, item.ProductID, item.ProductType).
				Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *PurchaseRepository) GetByUser(userID uint) ([]models.Purchase, error) {
	var purchases []models.Purchase
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&purchases).Error
	return purchases, err
}

func (r *PurchaseRepository) GetByPaymentID(paymentID string) ([]models.Purchase, error) {
	var purchases []models.Purchase
	err := r.db.Where("payment_id = ?", paymentID).Find(&purchases).Error
	return purchases, err
}

func (r *PurchaseRepository) GetCreatedSince(since time.Time) ([]models.Purchase, error) {
	var purchases []models.Purchase
	err := r.db.Where("created_at >= ?", since).Find(&purchases).Error
	return purchases, err
}
