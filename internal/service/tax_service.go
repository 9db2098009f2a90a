package service

import (
	"github.com/finversity/finversity-backend/internal/models"
	"github.com/finversity/finversity-backend/internal/repository"
)

type TaxService struct {
	taxRepo *repository.TaxRepository
}

func NewTaxService(taxRepo *repository.TaxRepository) *TaxService {
	return &TaxService{
		taxRepo: taxRepo,
	}
}

func (s *TaxService) GetTaxes() ([]models.Tax, error) {
	return s.taxRepo.GetAll()
}

func (s *TaxService) GetByProductType(productType string) (*models.Tax, error) {
	return s.taxRepo.GetByProductType(productType)
}

func (s *TaxService) CreateTax(req models.TaxRequest) (*models.Tax, error) {
	tax := models.Tax{
		ProductType: req.ProductType,
		Percentage:  req.Percentage,
	}
	if err := s.taxRepo.Create(&tax); err != nil {
		return nil, err
	}
	return &tax, nil
}

func (s *TaxService) UpdateTax(id uint, req models.TaxRequest) (*models.Tax, error) {
	tax, err := s.taxRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	tax.ProductType = req.ProductType
	tax.Percentage = req.Percentage
	if err := s.taxRepo.Update(tax); err != nil {
		return nil, err
	}
	return tax, nil
}

func (s *TaxService) DeleteTax(id uint) error {
	if _, err := s.taxRepo.GetByID(id); err != nil {
		return err
	}
	return s.taxRepo.Delete(id)
}
