package repository

import (
	"time"

	"github.com/finversity/finversity-backend/internal/models"
	"gorm.io/gorm"
)

type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{
		db: db,
	}
}

// UserSignupsSince returns the creation timestamps of users registered in
// the window; the service buckets them per calendar month.
func (r *DashboardRepository) UserSignupsSince(since time.Time) ([]time.Time, error) {
	var stamps []time.Time
	err := r.db.Model(&models.User{}).
		Where("created_at >= ?", since).
		Pluck("created_at", &stamps).Error
	return stamps, err
}

func (r *DashboardRepository) PurchasesSince(since time.Time) ([]models.Purchase, error) {
	var purchases []models.Purchase
	err := r.db.Where("created_at >= ?", since).Find(&purchases).Error
	return purchases, err
}
