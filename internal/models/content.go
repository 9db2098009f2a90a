package models

import "time"

type Blog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Body      string    `json:"body"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BlogRequest struct {
	Title string `json:"title" form:"title" validate:"required"`
	Body  string `json:"body" form:"body"`
}

type Testimonial struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Role      string    `json:"role"`
	Message   string    `json:"message" gorm:"not null"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TestimonialRequest struct {
	Name    string `json:"name" validate:"required"`
	Role    string `json:"role"`
	Message string `json:"message" validate:"required"`
	Rating  int    `json:"rating" validate:"omitempty,min=1,max=5"`
}

type FAQ struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Question  string    `json:"question" gorm:"not null"`
	Answer    string    `json:"answer" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type FAQRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// ContentBlock is an admin-editable piece of static page content, addressed
// by (page, section).
type ContentBlock struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Page      string    `json:"page" gorm:"not null;uniqueIndex:idx_content_page_section"`
	Section   string    `json:"section" gorm:"not null;uniqueIndex:idx_content_page_section"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ContentBlockRequest struct {
	Page    string `json:"page" validate:"required"`
	Section string `json:"section" validate:"required"`
	Body    string `json:"body"`
}
