package repository

import (
	"github.com/finversity/finversity-backend/internal/models"
	"gorm.io/gorm"
)

type CouponRepository struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) *CouponRepository {
	return &CouponRepository{
		db: db,
	}
}

func (r *CouponRepository) GetAll() ([]models.Coupon, error) {
	var coupons []models.Coupon
	err := r.db.Order("created_at DESC").Find(&coupons).Error
	return coupons, err
}

func (r *CouponRepository) GetByID(id uint) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.db.First(&coupon, id).Error
	return &coupon, err
}

func (r *CouponRepository) GetByCode(code string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.db.Where("code = ?", code).First(&coupon).Error
	return &coupon, err
}

func (r *CouponRepository) Create(coupon *models.Coupon) error {
	return r.db.Create(coupon).Error
}

func (r *CouponRepository) Update(coupon *models.Coupon) error {
	return r.db.Save(coupon).Error
}

func (r *CouponRepository) Delete(id uint) error {
	return r.db.Delete(&models.Coupon{}, id).Error
}

// Redeem decrements the usage counter with a single conditional UPDATE so
// the counter can never go below zero. Returns ErrRecordNotFound when the
// coupon is missing or exhausted.
func (r *CouponRepository) Redeem(code string) error {
	res := r.db.Model(&models.Coupon{}).
		Where("code = ? AND use_number_of_times > 0", code).
		UpdateColumn("use_number_of_times", gorm.Expr("use_number_of_times - 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CouponRepository) GetAllCustom() ([]models.CustomCoupon, error) {
	var coupons []models.CustomCoupon
	err := r.db.Order("created_at DESC").Find(&coupons).Error
	return coupons, err
}

func (r *CouponRepository) GetCustomByCode(code string) (*models.CustomCoupon, error) {
	var coupon models.CustomCoupon
	err := r.db.Where("code = ?", code).First(&coupon).Error
	return &coupon, err
}

func (r *CouponRepository) CreateCustom(coupon *models.CustomCoupon) error {
	return r.db.Create(coupon).Error
}

func (r *CouponRepository) UpdateCustom(coupon *models.CustomCoupon) error {
	return r.db.Save(coupon).Error
}

func (r *CouponRepository) DeleteCustom(id uint) error {
	return r.db.Delete(&models.CustomCoupon{}, id).Error
}
