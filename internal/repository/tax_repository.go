package repository

import (
	"github.com/finversity/finversity-backend/internal/models"
	"gorm.io/gorm"
)

type TaxRepository struct {
	db *gorm.DB
}

func NewTaxRepository(db *gorm.DB) *TaxRepository {
	return &TaxRepository{
		db: db,
	}
}

func (r *TaxRepository) GetAll() ([]models.Tax, error) {
	var taxes []models.Tax
	err := r.db.Find(&taxes).Error
	return taxes, err
}

func (r *TaxRepository) GetByProductType(productType string) (*models.Tax, error) {
	var tax models.Tax
	err := r.db.Where("product_type = ?", productType).First(&tax).Error
	return &tax, err
}

func (r *TaxRepository) GetByID(id uint) (*models.Tax, error) {
	var tax models.Tax
	err := r.db.First(&tax, id).Error
	return &tax, err
}

func (r *TaxRepository) Create(tax *models.Tax) error {
	return r.db.Create(tax).Error
}

func (r *TaxRepository) Update(tax *models.Tax) error {
	return r.db.Save(tax).Error
}

func (r *TaxRepository) Delete(id uint) error {
	return r.db.Delete(&models.Tax{}, id).Error
}
