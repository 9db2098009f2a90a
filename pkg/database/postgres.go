package database

import (
	"log"

	"github.com/finversity/finversity-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDatabase(databaseURL string) *gorm.DB {
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := RunMigrations(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func RunMigrations(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.CourseModule{},
		&models.Ebook{},
		&models.Package{},
		&models.PackageInclude{},
		&models.PackageFAQ{},
		&models.CartItem{},
		&models.Purchase{},
		&models.PackagePurchase{},
		&models.Coupon{},
		&models.CustomCoupon{},
		&models.Comment{},
		&models.Tax{},
		&models.Blog{},
		&models.Testimonial{},
		&models.FAQ{},
		&models.ContentBlock{},
	)
	if err != nil {
		return err
	}

	return seedTaxes(db)
}

// Every product type needs a tax row for checkout pricing, so default GST
// percentages are created once if missing.
func seedTaxes(db *gorm.DB) error {
	taxes := []models.Tax{
		{ProductType: models.ProductTypeCourse, Percentage: 18},
		{ProductType: models.ProductTypeEbook, Percentage: 18},
		{ProductType: models.ProductTypePackage, Percentage: 18},
	}

	for _, tax := range taxes {
		var count int64
		db.Model(&models.Tax{}).Where("product_type = ?", tax.ProductType).Count(&count)
		if count == 0 {
			if err := db.Create(&tax).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
