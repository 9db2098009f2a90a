package service

import (
	"errors"

	"github.com/finversity/finversity-backend/internal/models"
	"github.com/finversity/finversity-backend/internal/repository"
	"gorm.io/gorm"
)

type CartService struct {
	cartRepo   *repository.CartRepository
	courseRepo *repository.CourseRepository
	ebookRepo  *repository.EbookRepository
}

func NewCartService(cartRepo *repository.CartRepository, courseRepo *repository.CourseRepository, ebookRepo *repository.EbookRepository) *CartService {
	return &CartService{
		cartRepo:   cartRepo,
		courseRepo: courseRepo,
		ebookRepo:  ebookRepo,
	}
}

func (s *CartService) AddItem(userID uint, req models.CartItemRequest) (*models.CartItem, error) {
	exists, err := s.cartRepo.Exists(userID, req.ProductID, req.ProductType)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateCartItem
	}

	item := models.CartItem{
		UserID:      userID,
		ProductID:   req.ProductID,
		ProductType: req.ProductType,
		Price:       req.Price,
	}
	if err := s.cartRepo.Create(&item); err != nil {
		// The unique index backstops the check above under concurrency.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateCartItem
		}
		return nil, err
	}
	return &item, nil
}

// GetCart returns the user's cart rows joined with product display fields.
func (s *CartService) GetCart(userID uint) ([]models.CartItemDetail, error) {
	items, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}

	details := make([]models.CartItemDetail, 0, len(items))
	for _, item := range items {
		detail := models.CartItemDetail{CartItem: item}

		switch item.ProductType {
		case models.ProductTypeCourse:
			if course, err := s.courseRepo.GetByID(item.ProductID); err == nil {
				detail.Title = course.Title
				detail.Thumbnail = course.Thumbnail
			}
		case models.ProductTypeEbook:
			if ebook, err := s.ebookRepo.GetByID(item.ProductID); err == nil {
				detail.Title = ebook.Title
				detail.Thumbnail = ebook.Cover
			}
		}

		details = append(details, detail)
	}
	return details, nil
}

func (s *CartService) RemoveItem(userID, itemID uint) error {
	return s.cartRepo.DeleteByID(userID, itemID)
}

func (s *CartService) Count(userID uint) (int64, error) {
	return s.cartRepo.Count(userID)
}
