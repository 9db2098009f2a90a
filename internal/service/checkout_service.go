package service

import (
	"time"

	"github.com/finversity/finversity-backend/internal/models"
	"github.com/finversity/finversity-backend/internal/repository"
	"github.com/finversity/finversity-backend/pkg/invoice"
	"github.com/finversity/finversity-backend/pkg/payment"
	"github.com/finversity/finversity-backend/pkg/utils"
	"go.uber.org/zap"
)

// InvoiceGenerator renders a purchase invoice PDF and returns its stored
// path and bytes.
type InvoiceGenerator interface {
	Generate(data invoice.Data) (string, []byte, error)
}

// CheckoutService coordinates the purchase flow: gateway order creation,
// transactional purchase recording, then best-effort invoice and email.
type CheckoutService struct {
	purchaseRepo *repository.PurchaseRepository
	userRepo     *repository.UserRepository
	courseRepo   *repository.CourseRepository
	ebookRepo    *repository.EbookRepository
	gateway      payment.Gateway
	invoices     InvoiceGenerator
	email        EmailSender
	logger       *zap.Logger
}

func NewCheckoutService(
	purchaseRepo *repository.PurchaseRepository,
	userRepo *repository.UserRepository,
	courseRepo *repository.CourseRepository,
	ebookRepo *repository.EbookRepository,
	gateway payment.Gateway,
	invoices InvoiceGenerator,
	email EmailSender,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		purchaseRepo: purchaseRepo,
		userRepo:     userRepo,
		courseRepo:   courseRepo,
		ebookRepo:    ebookRepo,
		gateway:      gateway,
		invoices:     invoices,
		email:        email,
		logger:       logger,
	}
}

// CreateOrder opens a gateway order for the client-side checkout widget.
// The payable amount arrives from the client already discounted and taxed.
func (s *CheckoutService) CreateOrder(userID uint, req models.CreateOrderRequest) (*models.GatewayOrder, error) {
	receipt := "rcpt_" + utils.GenerateRandomString(16)

	order, err := s.gateway.CreateOrder(req.Amount, req.Currency, receipt)
	if err != nil {
		return nil, err
	}

	s.logger.Info("gateway order created",
		zap.Uint("user_id", userID),
		zap.String("order_id", order.ID),
		zap.Float64("amount", order.Amount),
	)

	return &models.GatewayOrder{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyID:    s.gateway.KeyID(),
	}, nil
}

// RecordPurchase runs after the widget reports a successful payment. The
// ledger writes and cart deletes are atomic; invoice rendering and the
// email are attempted afterwards and only logged on failure, so a committed
// purchase can exist without a delivered invoice.
func (s *CheckoutService) RecordPurchase(userID uint, req models.RecordPurchaseRequest) ([]models.PurchaseDetail, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if err := s.purchaseRepo.RecordItems(userID, req.PaymentID, req.OrderID, req.Items); err != nil {
		return nil, err
	}

	details := make([]models.PurchaseDetail, 0, len(req.Items))
	lines := make([]invoice.Line, 0, len(req.Items))
	total := 0.0
	for _, item := range req.Items {
		title := s.productTitle(item.ProductType, item.ProductID)
		details = append(details, models.PurchaseDetail{
			Purchase: models.Purchase{
				UserID:        userID,
				ProductID:     item.ProductID,
				ProductType:   item.ProductType,
				PaymentID:     req.PaymentID,
				OrderID:       req.OrderID,
				ProductAmount: item.Amount,
			},
			Title: title,
		})
		lines = append(lines, invoice.Line{
			Title:  title,
			Type:   item.ProductType,
			Amount: item.Amount,
		})
		total += item.Amount
	}

	path, pdf, err := s.invoices.Generate(invoice.Data{
		PaymentID:     req.PaymentID,
		CustomerName:  user.FullName,
		CustomerEmail: user.Email,
		Lines:         lines,
		Total:         total,
		Date:          time.Now(),
	})
	if err != nil {
		s.logger.Error("invoice generation failed",
			zap.String("payment_id", req.PaymentID),
			zap.Error(err),
		)
		return details, nil
	}

	if err := s.email.SendInvoiceEmail(user.Email, user.FullName, req.PaymentID, pdf); err != nil {
		s.logger.Error("invoice email failed",
			zap.String("payment_id", req.PaymentID),
			zap.String("email", user.Email),
			zap.Error(err),
		)
		return details, nil
	}

	s.logger.Info("purchase recorded",
		zap.Uint("user_id", userID),
		zap.String("payment_id", req.PaymentID),
		zap.Int("items", len(req.Items)),
		zap.String("invoice", path),
	)
	return details, nil
}

func (s *CheckoutService) GetPurchaseHistory(userID uint) ([]models.PurchaseDetail, error) {
	purchases, err := s.purchaseRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}

	details := make([]models.PurchaseDetail, 0, len(purchases))
	for _, p := range purchases {
		details = append(details, models.PurchaseDetail{
			Purchase: p,
			Title:    s.productTitle(p.ProductType, p.ProductID),
		})
	}
	return details, nil
}

func (s *CheckoutService) productTitle(productType string, productID uint) string {
	switch productType {
	case models.ProductTypeCourse:
		if course, err := s.courseRepo.GetByID(productID); err == nil {
			return course.Title
		}
	case models.ProductTypeEbook:
		if ebook, err := s.ebookRepo.GetByID(productID); err == nil {
			return ebook.Title
		}
	}
	return "Unknown product"
}
