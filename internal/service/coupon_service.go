package service

import (
	"errors"
	"math"

	"github.com/finversity/finversity-backend/internal/models"
	"github.com/finversity/finversity-backend/internal/repository"
	"gorm.io/gorm"
)

type CouponService struct {
	couponRepo *repository.CouponRepository
	taxRepo    *repository.TaxRepository
}

func NewCouponService(couponRepo *repository.CouponRepository, taxRepo *repository.TaxRepository) *CouponService {
	return &CouponService{
		couponRepo: couponRepo,
		taxRepo:    taxRepo,
	}
}

func (s *CouponService) GetCoupons() ([]models.Coupon, error) {
	return s.couponRepo.GetAll()
}

func (s *CouponService) CreateCoupon(req models.CouponRequest) (*models.Coupon, error) {
	coupon := models.Coupon{
		Code:             req.Code,
		DiscountType:     req.DiscountType,
		Value:            req.Value,
		MinimumAmount:    req.MinimumAmount,
		UseNumberOfTimes: req.UseNumberOfTimes,
		Status:           req.Status,
	}
	if coupon.Status == "" {
		coupon.Status = models.CouponStatusActive
	}
	if err := s.couponRepo.Create(&coupon); err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (s *CouponService) UpdateCoupon(id uint, req models.CouponRequest) (*models.Coupon, error) {
	coupon, err := s.couponRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	coupon.Code = req.Code
	coupon.DiscountType = req.DiscountType
	coupon.Value = req.Value
	coupon.MinimumAmount = req.MinimumAmount
	coupon.UseNumberOfTimes = req.UseNumberOfTimes
	if req.Status != "" {
		coupon.Status = req.Status
	}

	if err := s.couponRepo.Update(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

func (s *CouponService) DeleteCoupon(id uint) error {
	if _, err := s.couponRepo.GetByID(id); err != nil {
		return err
	}
	return s.couponRepo.Delete(id)
}

// Apply validates a coupon against an order amount and returns the pricing
// breakdown: discount, GST for the product type, and the payable total.
func (s *CouponService) Apply(req models.ApplyCouponRequest) (*models.CouponQuote, error) {
	coupon, err := s.couponRepo.GetByCode(req.Code)
	if err != nil {
		return nil, err
	}

	if coupon.Status == models.CouponStatusInactive {
		return nil, ErrCouponNotActive
	}
	if coupon.UseNumberOfTimes <= 0 {
		return nil, ErrCouponExhausted
	}
	if req.Amount < coupon.MinimumAmount {
		return nil, ErrBelowMinimumAmount
	}

	var discount float64
	if coupon.DiscountType == models.DiscountTypePercentage {
		discount = req.Amount * coupon.Value / 100
	} else {
		discount = coupon.Value
	}
	if discount > req.Amount {
		discount = req.Amount
	}
	discounted := req.Amount - discount

	productType := req.ProductType
	if productType == "" {
		productType = models.ProductTypeCourse
	}
	taxPct := 0.0
	if tax, err := s.taxRepo.GetByProductType(productType); err == nil {
		taxPct = tax.Percentage
	}
	taxAmount := round2(discounted * taxPct / 100)

	return &models.CouponQuote{
		Code:             coupon.Code,
		Discount:         round2(discount),
		DiscountedAmount: round2(discounted),
		TaxPercentage:    taxPct,
		TaxAmount:        taxAmount,
		PayableAmount:    round2(discounted + taxAmount),
	}, nil
}

// Redeem burns one use of the coupon. The decrement is a single conditional
// UPDATE, so an exhausted coupon fails without touching the counter.
func (s *CouponService) Redeem(code string) error {
	err := s.couponRepo.Redeem(code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCouponExhausted
	}
	return err
}

func (s *CouponService) GetCustomCoupons() ([]models.CustomCoupon, error) {
	return s.couponRepo.GetAllCustom()
}

func (s *CouponService) CreateCustomCoupon(req models.CustomCouponRequest) (*models.CustomCoupon, error) {
	coupon := models.CustomCoupon{
		Code:             req.Code,
		Email:            req.Email,
		DiscountType:     req.DiscountType,
		Amount:           req.Amount,
		MinimumAmount:    req.MinimumAmount,
		UseNumberOfTimes: req.UseNumberOfTimes,
		Status:           req.Status,
	}
	if coupon.Status == "" {
		coupon.Status = models.CouponStatusActive
	}
	if err := s.couponRepo.CreateCustom(&coupon); err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (s *CouponService) DeleteCustomCoupon(id uint) error {
	return s.couponRepo.DeleteCustom(id)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
