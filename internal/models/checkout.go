package models

type CreateOrderRequest struct {
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Currency string  `json:"currency" validate:"omitempty,len=3"`
}

// GatewayOrder is what the client-side checkout widget needs to open.
type GatewayOrder struct {
	OrderID  string  `json:"order_id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	KeyID    string  `json:"key_id"`
}

type PurchaseLineItem struct {
	ProductID   uint    `json:"product_id" validate:"required"`
	ProductType string  `json:"product_type" validate:"required,oneof=course ebook"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
}

type RecordPurchaseRequest struct {
	PaymentID string             `json:"payment_id" validate:"required"`
	OrderID   string             `json:"order_id"`
	Items     []PurchaseLineItem `json:"items" validate:"required,min=1,dive"`
}
