package repository

import (
	"github.com/finversity/finversity-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ContentRepository covers the site-content resources: blogs, testimonials,
// FAQs and editable content blocks.
type ContentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{
		db: db,
	}
}

func (r *ContentRepository) GetAllBlogs() ([]models.Blog, error) {
	var blogs []models.Blog
	err := r.db.Order("created_at DESC").Find(&blogs).Error
	return blogs, err
}

func (r *ContentRepository) GetBlogByID(id uint) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.First(&blog, id).Error
	return &blog, err
}

func (r *ContentRepository) CreateBlog(blog *models.Blog) error {
	return r.db.Create(blog).Error
}

func (r *ContentRepository) UpdateBlog(blog *models.Blog) error {
	return r.db.Save(blog).Error
}

func (r *ContentRepository) DeleteBlog(id uint) error {
	return r.db.Delete(&models.Blog{}, id).Error
}

func (r *ContentRepository) GetAllTestimonials() ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := r.db.Order("created_at DESC").Find(&testimonials).Error
	return testimonials, err
}

func (r *ContentRepository) GetTestimonialByID(id uint) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	err := r.db.First(&testimonial, id).Error
	return &testimonial, err
}

func (r *ContentRepository) CreateTestimonial(t *models.Testimonial) error {
	return r.db.Create(t).Error
}

func (r *ContentRepository) UpdateTestimonial(t *models.Testimonial) error {
	return r.db.Save(t).Error
}

func (r *ContentRepository) DeleteTestimonial(id uint) error {
	return r.db.Delete(&models.Testimonial{}, id).Error
}

func (r *ContentRepository) GetAllFAQs() ([]models.FAQ, error) {
	var faqs []models.FAQ
	err := r.db.Find(&faqs).Error
	return faqs, err
}

func (r *ContentRepository) GetFAQByID(id uint) (*models.FAQ, error) {
	var faq models.FAQ
	err := r.db.First(&faq, id).Error
	return &faq, err
}

func (r *ContentRepository) CreateFAQ(faq *models.FAQ) error {
	return r.db.Create(faq).Error
}

func (r *ContentRepository) UpdateFAQ(faq *models.FAQ) error {
	return r.db.Save(faq).Error
}

func (r *ContentRepository) DeleteFAQ(id uint) error {
	return r.db.Delete(&models.FAQ{}, id).Error
}

func (r *ContentRepository) GetContentByPage(page string) ([]models.ContentBlock, error) {
	var blocks []models.ContentBlock
	err := r.db.Where("page = ?", page).Find(&blocks).Error
	return blocks, err
}

// UpsertContent creates or replaces the block addressed by (page, section).
func (r *ContentRepository) UpsertContent(block *models.ContentBlock) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "page"}, {Name: "section"}},
		DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
	}).Create(block).Error
}
