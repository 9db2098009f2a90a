package models

import "time"

// Purchase is the append-only ledger of paid course/ebook transactions.
// Rows are written only after the gateway confirms payment and are never
// updated or deleted afterwards.
type Purchase struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"user_id" gorm:"not null;index"`
	ProductID     uint      `json:"product_id" gorm:"not null"`
	ProductType   string    `json:"product_type" gorm:"not null"`
	PaymentID     string    `json:"payment_id" gorm:"not null;index"`
	OrderID       string    `json:"order_id"`
	ProductAmount float64   `json:"product_amount" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
}

// PackagePurchase is the parallel ledger for subscription packages. It is
// deliberately not unified with Purchase.
type PackagePurchase struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"user_id" gorm:"not null;index"`
	PackageID     uint      `json:"package_id" gorm:"not null"`
	Amount        float64   `json:"amount" gorm:"not null"`
	TransactionID string    `json:"transaction_id" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
}

type PackagePurchaseRequest struct {
	UserID        uint    `json:"user_id" validate:"required"`
	PackageID     uint    `json:"package_id" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	TransactionID string  `json:"transaction_id" validate:"required"`
}

// PackagePurchaseDetail joins a ledger row with its package's display fields.
type PackagePurchaseDetail struct {
	PackagePurchase
	PackageTitle string  `json:"package_title"`
	PackagePrice float64 `json:"package_price"`
}

// PurchaseDetail joins a ledger row with the purchased product's title.
type PurchaseDetail struct {
	Purchase
	Title string `json:"title"`
}
