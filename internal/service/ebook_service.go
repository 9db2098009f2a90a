package service

import (
	"mime/multipart"

	"github.com/finversity/finversity-backend/internal/models"
	"github.com/finversity/finversity-backend/internal/repository"
	"github.com/finversity/finversity-backend/pkg/storage"
	"go.uber.org/zap"
)

type EbookService struct {
	ebookRepo *repository.EbookRepository
	storage   storage.StorageService
	logger    *zap.Logger
}

func NewEbookService(ebookRepo *repository.EbookRepository, store storage.StorageService, logger *zap.Logger) *EbookService {
	return &EbookService{
		ebookRepo: ebookRepo,
		storage:   store,
		logger:    logger,
	}
}

func (s *EbookService) GetEbooks() ([]models.Ebook, error) {
	return s.ebookRepo.GetAll()
}

func (s *EbookService) GetEbook(id uint) (*models.Ebook, error) {
	return s.ebookRepo.GetByID(id)
}

func (s *EbookService) CreateEbook(req models.EbookRequest, cover, file *multipart.FileHeader) (*models.Ebook, error) {
	ebook := models.Ebook{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Price:       req.Price,
	}

	if cover != nil {
		key, err := uploadFile(s.storage, "ebooks/covers", cover)
		if err != nil {
			return nil, err
		}
		ebook.Cover = key
	}
	if file != nil {
		key, err := uploadFile(s.storage, "ebooks/files", file)
		if err != nil {
			return nil, err
		}
		ebook.File = key
	}

	if err := s.ebookRepo.Create(&ebook); err != nil {
		return nil, err
	}
	return &ebook, nil
}

func (s *EbookService) UpdateEbook(id uint, req models.EbookRequest, cover, file *multipart.FileHeader) (*models.Ebook, error) {
	ebook, err := s.ebookRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	ebook.Title = req.Title
	ebook.Author = req.Author
	ebook.Description = req.Description
	ebook.Price = req.Price

	if cover != nil {
		key, err := uploadFile(s.storage, "ebooks/covers", cover)
		if err != nil {
			return nil, err
		}
		s.deleteQuietly(ebook.Cover)
		ebook.Cover = key
	}
	if file != nil {
		key, err := uploadFile(s.storage, "ebooks/files", file)
		if err != nil {
			return nil, err
		}
		s.deleteQuietly(ebook.File)
		ebook.File = key
	}

	if err := s.ebookRepo.Update(ebook); err != nil {
		return nil, err
	}
	return ebook, nil
}

func (s *EbookService) DeleteEbook(id uint) error {
	ebook, err := s.ebookRepo.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.ebookRepo.Delete(id); err != nil {
		return err
	}

	s.deleteQuietly(ebook.Cover)
	s.deleteQuietly(ebook.File)
	return nil
}

func (s *EbookService) deleteQuietly(key string) {
	if key == "" {
		return
	}
	if err := s.storage.Delete(key); err != nil {
		s.logger.Warn("failed to delete ebook file", zap.String("key", key), zap.Error(err))
	}
}
