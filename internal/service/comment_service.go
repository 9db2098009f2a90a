package service

import (
	"errors"

	"github.com/finversity/finversity-backend/internal/models"
	"github.com/finversity/finversity-backend/internal/repository"
)

var ErrNotCommentOwner = errors.New("comment belongs to another user")

type CommentService struct {
	commentRepo *repository.CommentRepository
}

func NewCommentService(commentRepo *repository.CommentRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
	}
}

func (s *CommentService) GetByProduct(productType string, productID uint) ([]models.Comment, error) {
	return s.commentRepo.GetByProduct(productType, productID)
}

func (s *CommentService) Create(userID uint, req models.CommentRequest) (*models.Comment, error) {
	comment := models.Comment{
		UserID:      userID,
		ProductType: req.ProductType,
		ProductID:   req.ProductID,
		Comment:     req.Comment,
		Review:      req.Review,
	}
	if err := s.commentRepo.Create(&comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *CommentService) Update(userID, id uint, req models.CommentUpdateRequest) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if comment.UserID != userID {
		return nil, ErrNotCommentOwner
	}

	comment.Comment = req.Comment
	comment.Review = req.Review
	if err := s.commentRepo.Update(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) Delete(userID, id uint) error {
	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		return err
	}
	if comment.UserID != userID {
		return ErrNotCommentOwner
	}
	return s.commentRepo.Delete(id)
}
