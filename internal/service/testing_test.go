package service

import (
	"bytes"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/finversity/finversity-backend/internal/models"
	"github.com/finversity/finversity-backend/pkg/invoice"
	"github.com/finversity/finversity-backend/pkg/payment"
)

var errFake = errors.New("induced failure")

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
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
	))
	return db
}

// multipartFile builds a real multipart.FileHeader the way Fiber hands one
// to the services.
func multipartFile(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["file"][0]
}

type stubEmail struct {
	welcomeTo []string
	invoiceTo []string
	err       error
}

func (s *stubEmail) SendWelcomeEmail(email, fullName string) error {
	s.welcomeTo = append(s.welcomeTo, email)
	return s.err
}

func (s *stubEmail) SendInvoiceEmail(email, fullName, paymentID string, pdf []byte) error {
	s.invoiceTo = append(s.invoiceTo, email)
	return s.err
}

type stubGateway struct {
	orders   []payment.Order
	receipts []string
	err      error
}

func (s *stubGateway) CreateOrder(amount float64, currency, receipt string) (*payment.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.receipts = append(s.receipts, receipt)
	order := payment.Order{
		ID:       "order_test",
		Amount:   amount,
		Currency: currency,
	}
	s.orders = append(s.orders, order)
	return &order, nil
}

func (s *stubGateway) KeyID() string { return "rzp_test_key" }

type stubInvoices struct {
	generated []invoice.Data
	err       error
}

func (s *stubInvoices) Generate(data invoice.Data) (string, []byte, error) {
	if s.err != nil {
		return "", nil, s.err
	}
	s.generated = append(s.generated, data)
	return data.PaymentID + ".pdf", []byte("%PDF-test"), nil
}
