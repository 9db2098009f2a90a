package models

import "time"

type Comment struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	ProductType string    `json:"product_type" gorm:"not null"`
	ProductID   uint      `json:"product_id" gorm:"not null;index"`
	Comment     string    `json:"comment" gorm:"not null"`
	Review      int       `json:"review" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CommentRequest struct {
	ProductType string `json:"product_type" validate:"required,oneof=course ebook package"`
	ProductID   uint   `json:"product_id" validate:"required"`
	Comment     string `json:"comment" validate:"required"`
	Review      int    `json:"review" validate:"required,min=1,max=5"`
}

type CommentUpdateRequest struct {
	Comment string `json:"comment" validate:"required"`
	Review  int    `json:"review" validate:"required,min=1,max=5"`
}
