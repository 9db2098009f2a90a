package service

import (
	"errors"

	"github.com/finversity/finversity-backend/internal/models"
	"github.com/finversity/finversity-backend/internal/repository"
	"github.com/finversity/finversity-backend/pkg/bcrypt"
	"github.com/finversity/finversity-backend/pkg/jwt"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EmailSender is the slice of the email service the business layer needs.
type EmailSender interface {
	SendWelcomeEmail(email, fullName string) error
	SendInvoiceEmail(email, fullName, paymentID string, pdf []byte) error
}

type AuthService struct {
	userRepo *repository.UserRepository
	email    EmailSender
	logger   *zap.Logger
}

func NewAuthService(userRepo *repository.UserRepository, email EmailSender, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		email:    email,
		logger:   logger,
	}
}

func (s *AuthService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	taken, err := s.userRepo.EmailExists(req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Password: hashed,
	}
	if err := s.userRepo.Create(&user); err != nil {
		return nil, err
	}

	// Welcome email is best-effort; registration succeeded either way.
	if err := s.email.SendWelcomeEmail(user.Email, user.FullName); err != nil {
		s.logger.Warn("welcome email failed",
			zap.String("email", user.Email),
			zap.Error(err),
		)
	}

	token, err := jwt.GenerateToken(user.Email, user.ID, user.IsAdmin)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: user}, nil
}

func (s *AuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(user.Email, user.ID, user.IsAdmin)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: *user}, nil
}

func (s *AuthService) GetProfile(userID uint) (*models.User, error) {
	return s.userRepo.GetByID(userID)
}
