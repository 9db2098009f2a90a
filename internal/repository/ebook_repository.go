package repository

import (
	"github.com/finversity/finversity-backend/internal/models"
	"gorm.io/gorm"
)

type EbookRepository struct {
	db *gorm.DB
}

func NewEbookRepository(db *gorm.DB) *EbookRepository {
	return &EbookRepository{
		db: db,
	}
}

func (r *EbookRepository) GetAll() ([]models.Ebook, error) {
	var ebooks []models.Ebook
	err := r.db.Order("created_at DESC").Find(&ebooks).Error
	return ebooks, err
}

func (r *EbookRepository) GetByID(id uint) (*models.Ebook, error) {
	var ebook models.Ebook
	err := r.db.First(&ebook, id).Error
	return &ebook, err
}

func (r *EbookRepository) Create(ebook *models.Ebook) error {
	return r.db.Create(ebook).Error
}

func (r *EbookRepository) Update(ebook *models.Ebook) error {
	return r.db.Save(ebook).Error
}

func (r *EbookRepository) Delete(id uint) error {
	return r.db.Delete(&models.Ebook{}, id).Error
}
