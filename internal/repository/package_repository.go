package repository

import (
	"github.com/finversity/finversity-backend/internal/models"
	"gorm.io/gorm"
)

type PackageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{
		db: db,
	}
}

func (r *PackageRepository) GetAll() ([]models.Package, error) {
	var packages []models.Package
	err := r.db.Where("is_active = ?", true).Order("price ASC").Find(&packages).Error
	return packages, err
}

func (r *PackageRepository) GetByID(id uint) (*models.Package, error) {
	var pkg models.Package
	err := r.db.Preload("Includes").Preload("FAQs").First(&pkg, id).Error
	return &pkg, err
}

func (r *PackageRepository) Create(pkg *models.Package) error {
	return r.db.Create(pkg).Error
}

func (r *PackageRepository) Update(pkg *models.Package) error {
	return r.db.Save(pkg).Error
}

// ReplaceSubRecords swaps a package's includes and FAQs for the given sets
// in one transaction.
func (r *PackageRepository) ReplaceSubRecords(pkgID uint, includes []models.PackageInclude, faqs []models.PackageFAQ) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("package_id = ?", pkgID).Delete(&models.PackageInclude{}).Error; err != nil {
			return err
		}
		if err := tx.Where("package_id = ?", pkgID).Delete(&models.PackageFAQ{}).Error; err != nil {
			return err
		}
		if len(includes) > 0 {
			if err := tx.Create(&includes).Error; err != nil {
				return err
			}
		}
		if len(faqs) > 0 {
			if err := tx.Create(&faqs).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *PackageRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("package_id = ?", id).Delete(&models.PackageInclude{}).Error; err != nil {
			return err
		}
		if err := tx.Where("package_id = ?", id).Delete(&models.PackageFAQ{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Package{}, id).Error
	})
}
