package models

import "time"

type Package struct {
	ID          uint             `json:"id" gorm:"primaryKey"`
	Title       string           `json:"title" gorm:"not null"`
	Description string           `json:"description"`
	Price       float64          `json:"price" gorm:"not null"`
	Duration    string           `json:"duration"`
	IsActive    bool             `json:"is_active" gorm:"default:true"`
	Includes    []PackageInclude `json:"includes,omitempty" gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`
	FAQs        []PackageFAQ     `json:"faqs,omitempty" gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type PackageInclude struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	PackageID uint   `json:"package_id" gorm:"not null;index"`
	Line      string `json:"line" gorm:"not null"`
}

type PackageFAQ struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	PackageID uint   `json:"package_id" gorm:"not null;index"`
	Question  string `json:"question" gorm:"not null"`
	Answer    string `json:"answer" gorm:"not null"`
}

type PackageRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Duration    string   `json:"duration"`
	IsActive    *bool    `json:"is_active"`
	Includes    []string `json:"includes"`
	FAQs        []struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	} `json:"faqs"`
}
