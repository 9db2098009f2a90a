package models

import "time"

// Tax is a per-product-type GST percentage applied on top of the discounted
// price at checkout.
type Tax struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ProductType string    `json:"product_type" gorm:"uniqueIndex;not null"`
	Percentage  float64   `json:"percentage" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TaxRequest struct {
	ProductType string  `json:"product_type" validate:"required,oneof=course ebook package"`
	Percentage  float64 `json:"percentage" validate:"gte=0,lte=100"`
}
