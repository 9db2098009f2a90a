package models

import "time"

const (
	DiscountTypePercentage = "percentage"
	DiscountTypeAmount     = "amount"

	CouponStatusActive          = "active"
	CouponStatusInactive        = "inactive"
	CouponStatusActiveInvisible = "active-invisible"
)

type Coupon struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Code             string    `json:"code" gorm:"uniqueIndex;not null"`
	DiscountType     string    `json:"discount_type" gorm:"not null"`
	Value            float64   `json:"value" gorm:"not null"`
	MinimumAmount    float64   `json:"minimum_amount"`
	UseNumberOfTimes int       `json:"use_number_of_times" gorm:"default:0"`
	Status           string    `json:"status" gorm:"default:'active'"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CustomCoupon is a coupon issued to a single user, kept as its own table
// alongside the shared Coupon pool.
type CustomCoupon struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Code             string    `json:"code" gorm:"uniqueIndex;not null"`
	Email            string    `json:"email" gorm:"not null"`
	DiscountType     string    `json:"discount_type" gorm:"not null"`
	Amount           float64   `json:"amount" gorm:"not null"`
	MinimumAmount    float64   `json:"minimum_amount"`
	UseNumberOfTimes int       `json:"use_number_of_times" gorm:"default:0"`
	Status           string    `json:"status" gorm:"default:'active'"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type CouponRequest struct {
	Code             string  `json:"code" validate:"required"`
	DiscountType     string  `json:"discount_type" validate:"required,oneof=percentage amount"`
	Value            float64 `json:"value" validate:"required,gt=0"`
	MinimumAmount    float64 `json:"minimum_amount"`
	UseNumberOfTimes int     `json:"use_number_of_times"`
	Status           string  `json:"status" validate:"omitempty,oneof=active inactive active-invisible"`
}

type CustomCouponRequest struct {
	Code             string  `json:"code" validate:"required"`
	Email            string  `json:"email" validate:"required,email"`
	DiscountType     string  `json:"discount_type" validate:"required,oneof=percentage amount"`
	Amount           float64 `json:"amount" validate:"required,gt=0"`
	MinimumAmount    float64 `json:"minimum_amount"`
	UseNumberOfTimes int     `json:"use_number_of_times"`
	Status           string  `json:"status" validate:"omitempty,oneof=active inactive active-invisible"`
}

type ApplyCouponRequest struct {
	Code        string  `json:"code" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	ProductType string  `json:"product_type" validate:"omitempty,oneof=course ebook package"`
}

// CouponQuote is the server-side pricing breakdown returned by apply.
type CouponQuote struct {
	Code             string  `json:"code"`
	Discount         float64 `json:"discount"`
	DiscountedAmount float64 `json:"discounted_amount"`
	TaxPercentage    float64 `json:"tax_percentage"`
	TaxAmount        float64 `json:"tax_amount"`
	PayableAmount    float64 `json:"payable_amount"`
}

type RedeemCouponRequest struct {
	Code string `json:"code" validate:"required"`
}
