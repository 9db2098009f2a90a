package payment

import (
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

// Order is the gateway order the client-side checkout widget opens.
// Amount is in the currency's base unit (rupees, not paise).
type Order struct {
	ID       string
	Amount   float64
	Currency string
}

// Gateway creates payment orders. The concrete implementation talks to
// Razorpay; checkout tests substitute a stub.
type Gateway interface {
	CreateOrder(amount float64, currency, receipt string) (*Order, error)
	KeyID() string
}

type RazorpayService struct {
	client *razorpay.Client
	keyID  string
}

func NewRazorpayService(keyID, keySecret string) *RazorpayService {
	return &RazorpayService{
		client: razorpay.NewClient(keyID, keySecret),
		keyID:  keyID,
	}
}

func (s *RazorpayService) CreateOrder(amount float64, currency, receipt string) (*Order, error) {
	if currency == "" {
		currency = "INR"
	}

	data := map[string]interface{}{
		"amount":   int64(amount * 100), // rupees to paise
		"currency": currency,
		"receipt":  receipt,
	}

	body, err := s.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway order: %w", err)
	}

	orderID, ok := body["id"].(string)
	if !ok {
		return nil, fmt.Errorf("gateway order response missing id")
	}

	return &Order{
		ID:       orderID,
		Amount:   amount,
		Currency: currency,
	}, nil
}

func (s *RazorpayService) KeyID() string {
	return s.keyID
}
