package models

import "time"

type Ebook struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Author      string    `json:"author"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"not null"`
	Cover       string    `json:"cover"`
	File        string    `json:"file"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type EbookRequest struct {
	Title       string  `json:"title" form:"title" validate:"required"`
	Author      string  `json:"author" form:"author"`
	Description string  `json:"description" form:"description"`
	Price       float64 `json:"price" form:"price" validate:"required,gt=0"`
}
