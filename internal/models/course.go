package models

import "time"

type Course struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	Title            string         `json:"title" gorm:"not null"`
	ShortDescription string         `json:"short_description"`
	Description      string         `json:"description"`
	Price            float64        `json:"price" gorm:"not null"`
	Thumbnail        string         `json:"thumbnail"`
	Modules          []CourseModule `json:"modules,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

type CourseModule struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CourseID    uint      `json:"course_id" gorm:"not null;index"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Video       string    `json:"video"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CourseRequest struct {
	Title            string  `json:"title" form:"title" validate:"required"`
	ShortDescription string  `json:"short_description" form:"short_description"`
	Description      string  `json:"description" form:"description"`
	Price            float64 `json:"price" form:"price" validate:"required,gt=0"`
}

type CourseModuleRequest struct {
	Title       string `json:"title" form:"title" validate:"required"`
	Description string `json:"description" form:"description"`
	Position    int    `json:"position" form:"position"`
}
