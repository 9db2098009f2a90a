package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/finversity/finversity-backend/internal/models"
	"github.com/finversity/finversity-backend/internal/repository"
)

func newCouponService(t *testing.T) (*CouponService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewCouponService(repository.NewCouponRepository(db), repository.NewTaxRepository(db))
	return svc, db
}

func seedCoupon(t *testing.T, db *gorm.DB, coupon models.Coupon) models.Coupon {
	t.Helper()
	require.NoError(t, db.Create(&coupon).Error)
	return coupon
}

func TestCouponApplyPercentage(t *testing.T) {
	svc, db := newCouponService(t)

	seedCoupon(t, db, models.Coupon{
		Code:             "SAVE20",
		DiscountType:     models.DiscountTypePercentage,
		Value:            20,
		MinimumAmount:    500,
		UseNumberOfTimes: 5,
		Status:           models.CouponStatusActive,
	})
	require.NoError(t, db.Create(&models.Tax{ProductType: models.ProductTypeCourse, Percentage: 18}).Error)

	quote, err := svc.Apply(models.ApplyCouponRequest{Code: "SAVE20", Amount: 1000, ProductType: models.ProductTypeCourse})
	require.NoError(t, err)
	require.InDelta(t, 200, quote.Discount, 0.001)
	require.InDelta(t, 800, quote.DiscountedAmount, 0.001)
	require.InDelta(t, 144, quote.TaxAmount, 0.001)
	require.InDelta(t, 944, quote.PayableAmount, 0.001)
}

func TestCouponApplyFlatAmountCapped(t *testing.T) {
	svc, db := newCouponService(t)

	seedCoupon(t, db, models.Coupon{
		Code:             "FLAT500",
		DiscountType:     models.DiscountTypeAmount,
		Value:            500,
		UseNumberOfTimes: 1,
		Status:           models.CouponStatusActive,
	})

	// Discount larger than the order amount never goes negative.
	quote, err := svc.Apply(models.ApplyCouponRequest{Code: "FLAT500", Amount: 300})
	require.NoError(t, err)
	require.InDelta(t, 300, quote.Discount, 0.001)
	require.Zero(t, quote.DiscountedAmount)
}

func TestCouponApplyRejections(t *testing.T) {
	svc, db := newCouponService(t)

	seedCoupon(t, db, models.Coupon{
		Code:             "INACTIVE",
		DiscountType:     models.DiscountTypePercentage,
		Value:            10,
		UseNumberOfTimes: 5,
		Status:           models.CouponStatusInactive,
	})
	seedCoupon(t, db, models.Coupon{
		Code:             "USEDUP",
		DiscountType:     models.DiscountTypePercentage,
		Value:            10,
		UseNumberOfTimes: 0,
		Status:           models.CouponStatusActive,
	})
	seedCoupon(t, db, models.Coupon{
		Code:             "MIN1000",
		DiscountType:     models.DiscountTypePercentage,
		Value:            10,
		MinimumAmount:    1000,
		UseNumberOfTimes: 5,
		Status:           models.CouponStatusActive,
	})

	_, err := svc.Apply(models.ApplyCouponRequest{Code: "NOPE", Amount: 100})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = svc.Apply(models.ApplyCouponRequest{Code: "INACTIVE", Amount: 100})
	require.ErrorIs(t, err, ErrCouponNotActive)

	_, err = svc.Apply(models.ApplyCouponRequest{Code: "USEDUP", Amount: 100})
	require.ErrorIs(t, err, ErrCouponExhausted)

	_, err = svc.Apply(models.ApplyCouponRequest{Code: "MIN1000", Amount: 500})
	require.ErrorIs(t, err, ErrBelowMinimumAmount)
}

func TestCouponRedeemDecrementsCounter(t *testing.T) {
	svc, db := newCouponService(t)

	seedCoupon(t, db, models.Coupon{
		Code:             "ONCE",
		DiscountType:     models.DiscountTypeAmount,
		Value:            50,
		UseNumberOfTimes: 1,
		Status:           models.CouponStatusActive,
	})

	require.NoError(t, svc.Redeem("ONCE"))

	var coupon models.Coupon
	require.NoError(t, db.Where("code = ?", "ONCE").First(&coupon).Error)
	require.Equal(t, 0, coupon.UseNumberOfTimes)

	// Exhausted coupon fails and the counter stays at zero.
	require.ErrorIs(t, svc.Redeem("ONCE"), ErrCouponExhausted)

	require.NoError(t, db.Where("code = ?", "ONCE").First(&coupon).Error)
	require.Equal(t, 0, coupon.UseNumberOfTimes)
}

func TestCouponRedeemUnknownCode(t *testing.T) {
	svc, _ := newCouponService(t)
	require.ErrorIs(t, svc.Redeem("MISSING"), ErrCouponExhausted)
}
