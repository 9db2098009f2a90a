package service

import (
	"mime/multipart"

	"github.com/finversity/finversity-backend/internal/models"
	"github.com/finversity/finversity-backend/internal/repository"
	"github.com/finversity/finversity-backend/pkg/storage"
	"go.uber.org/zap"
)

// ContentService handles blogs, testimonials, site FAQs and editable
// content blocks.
type ContentService struct {
	contentRepo *repository.ContentRepository
	storage     storage.StorageService
	logger      *zap.Logger
}

func NewContentService(contentRepo *repository.ContentRepository, store storage.StorageService, logger *zap.Logger) *ContentService {
	return &ContentService{
		contentRepo: contentRepo,
		storage:     store,
		logger:      logger,
	}
}

func (s *ContentService) GetBlogs() ([]models.Blog, error) {
	return s.contentRepo.GetAllBlogs()
}

func (s *ContentService) GetBlog(id uint) (*models.Blog, error) {
	return s.contentRepo.GetBlogByID(id)
}

func (s *ContentService) CreateBlog(req models.BlogRequest, image *multipart.FileHeader) (*models.Blog, error) {
	blog := models.Blog{
		Title: req.Title,
		Body:  req.Body,
	}

	if image != nil {
		key, err := uploadFile(s.storage, "blogs", image)
		if err != nil {
			return nil, err
		}
		blog.Image = key
	}

	if err := s.contentRepo.CreateBlog(&blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

func (s *ContentService) UpdateBlog(id uint, req models.BlogRequest, image *multipart.FileHeader) (*models.Blog, error) {
	blog, err := s.contentRepo.GetBlogByID(id)
	if err != nil {
		return nil, err
	}

	blog.Title = req.Title
	blog.Body = req.Body

	if image != nil {
		key, err := uploadFile(s.storage, "blogs", image)
		if err != nil {
			return nil, err
		}
		old := blog.Image
		blog.Image = key
		if old != "" {
			if err := s.storage.Delete(old); err != nil {
				s.logger.Warn("failed to delete replaced blog image", zap.String("key", old), zap.Error(err))
			}
		}
	}

	if err := s.contentRepo.UpdateBlog(blog); err != nil {
		return nil, err
	}
	return blog, nil
}

func (s *ContentService) DeleteBlog(id uint) error {
	blog, err := s.contentRepo.GetBlogByID(id)
	if err != nil {
		return err
	}

	if err := s.contentRepo.DeleteBlog(id); err != nil {
		return err
	}

	if blog.Image != "" {
		if err := s.storage.Delete(blog.Image); err != nil {
			s.logger.Warn("failed to delete blog image", zap.String("key", blog.Image), zap.Error(err))
		}
	}
	return nil
}

func (s *ContentService) GetTestimonials() ([]models.Testimonial, error) {
	return s.contentRepo.GetAllTestimonials()
}

func (s *ContentService) CreateTestimonial(req models.TestimonialRequest) (*models.Testimonial, error) {
	t := models.Testimonial{
		Name:    req.Name,
		Role:    req.Role,
		Message: req.Message,
		Rating:  req.Rating,
	}
	if err := s.contentRepo.CreateTestimonial(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *ContentService) UpdateTestimonial(id uint, req models.TestimonialRequest) (*models.Testimonial, error) {
	t, err := s.contentRepo.GetTestimonialByID(id)
	if err != nil {
		return nil, err
	}

	t.Name = req.Name
	t.Role = req.Role
	t.Message = req.Message
	t.Rating = req.Rating
	if err := s.contentRepo.UpdateTestimonial(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *ContentService) DeleteTestimonial(id uint) error {
	if _, err := s.contentRepo.GetTestimonialByID(id); err != nil {
		return err
	}
	return s.contentRepo.DeleteTestimonial(id)
}

func (s *ContentService) GetFAQs() ([]models.FAQ, error) {
	return s.contentRepo.GetAllFAQs()
}

func (s *ContentService) CreateFAQ(req models.FAQRequest) (*models.FAQ, error) {
	faq := models.FAQ{
		Question: req.Question,
		Answer:   req.Answer,
	}
	if err := s.contentRepo.CreateFAQ(&faq); err != nil {
		return nil, err
	}
	return &faq, nil
}

func (s *ContentService) UpdateFAQ(id uint, req models.FAQRequest) (*models.FAQ, error) {
	faq, err := s.contentRepo.GetFAQByID(id)
	if err != nil {
		return nil, err
	}

	faq.Question = req.Question
	faq.Answer = req.Answer
	if err := s.contentRepo.UpdateFAQ(faq); err != nil {
		return nil, err
	}
	return faq, nil
}

func (s *ContentService) DeleteFAQ(id uint) error {
	if _, err := s.contentRepo.GetFAQByID(id); err != nil {
		return err
	}
	return s.contentRepo.DeleteFAQ(id)
}

func (s *ContentService) GetPageContent(page string) ([]models.ContentBlock, error) {
	return s.contentRepo.GetContentByPage(page)
}

func (s *ContentService) UpsertContent(req models.ContentBlockRequest) (*models.ContentBlock, error) {
	block := models.ContentBlock{
		Page:    req.Page,
		Section: req.Section,
		Body:    req.Body,
	}
	if err := s.contentRepo.UpsertContent(&block); err != nil {
		return nil, err
	}
	return &block, nil
}
