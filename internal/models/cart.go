package models

import "time"

// CartItem is a pending, unpaid association between a user and a product.
// ProductID holds the course or ebook id depending on ProductType.
type CartItem struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_cart_user_product"`
	ProductID     uint      `json:"product_id" gorm:"not null;uniqueIndex:idx_cart_user_product"`
	ProductType   string    `json:"product_type" gorm:"not null;uniqueIndex:idx_cart_user_product"`
	Price         float64   `json:"price" gorm:"not null"`
	PaymentStatus string    `json:"payment_status" gorm:"default:'pending'"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CartItemRequest struct {
	ProductID   uint    `json:"product_id" validate:"required"`
	ProductType string  `json:"product_type" validate:"required,oneof=course ebook"`
	Price       float64 `json:"price" validate:"required,gt=0"`
}

// CartItemDetail is a cart row joined with its product's display fields.
type CartItemDetail struct {
	CartItem
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
}
