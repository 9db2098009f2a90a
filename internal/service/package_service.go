package service

import (
	"github.com/finversity/finversity-backend/internal/models"
	"github.com/finversity/finversity-backend/internal/repository"
)

type PackageService struct {
	packageRepo  *repository.PackageRepository
	purchaseRepo *repository.PackagePurchaseRepository
}

func NewPackageService(packageRepo *repository.PackageRepository, purchaseRepo *repository.PackagePurchaseRepository) *PackageService {
	return &PackageService{
		packageRepo:  packageRepo,
		purchaseRepo: purchaseRepo,
	}
}

func (s *PackageService) GetPackages() ([]models.Package, error) {
	return s.packageRepo.GetAll()
}

func (s *PackageService) GetPackage(id uint) (*models.Package, error) {
	return s.packageRepo.GetByID(id)
}

func (s *PackageService) CreatePackage(req models.PackageRequest) (*models.Package, error) {
	pkg := models.Package{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		IsActive:    true,
	}
	if req.IsActive != nil {
		pkg.IsActive = *req.IsActive
	}
	for _, line := range req.Includes {
		pkg.Includes = append(pkg.Includes, models.PackageInclude{Line: line})
	}
	for _, faq := range req.FAQs {
		pkg.FAQs = append(pkg.FAQs, models.PackageFAQ{Question: faq.Question, Answer: faq.Answer})
	}

	if err := s.packageRepo.Create(&pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (s *PackageService) UpdatePackage(id uint, req models.PackageRequest) (*models.Package, error) {
	pkg, err := s.packageRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	pkg.Title = req.Title
	pkg.Description = req.Description
	pkg.Price = req.Price
	pkg.Duration = req.Duration
	if req.IsActive != nil {
		pkg.IsActive = *req.IsActive
	}

	// Sub-records are replaced wholesale on update.
	includes := make([]models.PackageInclude, 0, len(req.Includes))
	for _, line := range req.Includes {
		includes = append(includes, models.PackageInclude{PackageID: id, Line: line})
	}
	faqs := make([]models.PackageFAQ, 0, len(req.FAQs))
	for _, faq := range req.FAQs {
		faqs = append(faqs, models.PackageFAQ{PackageID: id, Question: faq.Question, Answer: faq.Answer})
	}
	if err := s.packageRepo.ReplaceSubRecords(id, includes, faqs); err != nil {
		return nil, err
	}

	pkg.Includes = nil
	pkg.FAQs = nil
	if err := s.packageRepo.Update(pkg); err != nil {
		return nil, err
	}

	return s.packageRepo.GetByID(id)
}

func (s *PackageService) DeletePackage(id uint) error {
	if _, err := s.packageRepo.GetByID(id); err != nil {
		return err
	}
	return s.packageRepo.Delete(id)
}

// RecordPurchase appends a row to the package ledger after the gateway has
// confirmed the payment client-side.
func (s *PackageService) RecordPurchase(req models.PackagePurchaseRequest) (*models.PackagePurchase, error) {
	if _, err := s.packageRepo.GetByID(req.PackageID); err != nil {
		return nil, err
	}

	purchase := models.PackagePurchase{
		UserID:        req.UserID,
		PackageID:     req.PackageID,
		Amount:        req.Amount,
		TransactionID: req.TransactionID,
	}
	if err := s.purchaseRepo.Create(&purchase); err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (s *PackageService) GetUserPurchases(userID uint) ([]models.PackagePurchaseDetail, error) {
	return s.purchaseRepo.GetByUser(userID)
}
