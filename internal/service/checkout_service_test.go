package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/finversity/finversity-backend/internal/models"
	"github.com/finversity/finversity-backend/internal/repository"
)

type checkoutFixture struct {
	svc      *CheckoutService
	db       *gorm.DB
	gateway  *stubGateway
	invoices *stubInvoices
	email    *stubEmail
	user     models.User
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()
	db := newTestDB(t)

	user := models.User{FullName: "Asha Verma", Email: "asha@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	gateway := &stubGateway{}
	invoices := &stubInvoices{}
	email := &stubEmail{}

	svc := NewCheckoutService(
		repository.NewPurchaseRepository(db),
		repository.NewUserRepository(db),
		repository.NewCourseRepository(db),
		repository.NewEbookRepository(db),
		gateway,
		invoices,
		email,
		zap.NewNop(),
	)

	return &checkoutFixture{svc: svc, db: db, gateway: gateway, invoices: invoices, email: email, user: user}
}

func TestCreateOrder(t *testing.T) {
	f := newCheckoutFixture(t)

	order, err := f.svc.CreateOrder(f.user.ID, models.CreateOrderRequest{Amount: 1499, Currency: "INR"})
	require.NoError(t, err)
	require.Equal(t, "order_test", order.OrderID)
	require.InDelta(t, 1499, order.Amount, 0.001)
	require.Equal(t, "rzp_test_key", order.KeyID)

	require.Len(t, f.gateway.receipts, 1)
	require.NotEmpty(t, f.gateway.receipts[0])
}

func TestRecordPurchaseWritesLedgerAndClearsCart(t *testing.T) {
	f := newCheckoutFixture(t)

	course := models.Course{Title: "Mutual Funds Deep Dive", Price: 999}
	require.NoError(t, f.db.Create(&course).Error)
	ebook := models.Ebook{Title: "Tax Planning Handbook", Price: 299}
	require.NoError(t, f.db.Create(&ebook).Error)

	require.NoError(t, f.db.Create(&models.CartItem{
		UserID: f.user.ID, ProductID: course.ID, ProductType: models.ProductTypeCourse, Price: 999,
	}).Error)
	require.NoError(t, f.db.Create(&models.CartItem{
		UserID: f.user.ID, ProductID: ebook.ID, ProductType: models.ProductTypeEbook, Price: 299,
	}).Error)

	details, err := f.svc.RecordPurchase(f.user.ID, models.RecordPurchaseRequest{
		PaymentID: "pay_abc",
		OrderID:   "order_abc",
		Items: []models.PurchaseLineItem{
			{ProductID: course.ID, ProductType: models.ProductTypeCourse, Amount: 999},
			{ProductID: ebook.ID, ProductType: models.ProductTypeEbook, Amount: 299},
		},
	})
	require.NoError(t, err)
	require.Len(t, details, 2)
	require.Equal(t, "Mutual Funds Deep Dive", details[0].Title)
	require.Equal(t, "Tax Planning Handbook", details[1].Title)

	var purchases int64
	require.NoError(t, f.db.Model(&models.Purchase{}).Where("payment_id = ?", "pay_abc").Count(&purchases).Error)
	require.EqualValues(t, 2, purchases)

	var cartRows int64
	require.NoError(t, f.db.Model(&models.CartItem{}).Where("user_id = ?", f.user.ID).Count(&cartRows).Error)
	require.Zero(t, cartRows, "recorded items must leave the cart")

	require.Len(t, f.invoices.generated, 1)
	require.Equal(t, "pay_abc", f.invoices.generated[0].PaymentID)
	require.InDelta(t, 1298, f.invoices.generated[0].Total, 0.001)
	require.Equal(t, []string{"asha@example.com"}, f.email.invoiceTo)
}

func TestRecordPurchaseWithoutCartRows(t *testing.T) {
	f := newCheckoutFixture(t)

	course := models.Course{Title: "Buy Now Course", Price: 500}
	require.NoError(t, f.db.Create(&course).Error)

	// Buy-now skips the cart entirely; recording still succeeds.
	details, err := f.svc.RecordPurchase(f.user.ID, models.RecordPurchaseRequest{
		PaymentID: "pay_direct",
		Items: []models.PurchaseLineItem{
			{ProductID: course.ID, ProductType: models.ProductTypeCourse, Amount: 500},
		},
	})
	require.NoError(t, err)
	require.Len(t, details, 1)
}

func TestRecordPurchaseRollsBackOnFailure(t *testing.T) {
	f := newCheckoutFixture(t)

	// Breaking the cart table makes the second half of each insert+delete
	// pair fail, which must roll back the already-inserted ledger rows.
	require.NoError(t, f.db.Migrator().DropTable(&models.CartItem{}))

	_, err := f.svc.RecordPurchase(f.user.ID, models.RecordPurchaseRequest{
		PaymentID: "pay_broken",
		Items: []models.PurchaseLineItem{
			{ProductID: 1, ProductType: models.ProductTypeCourse, Amount: 100},
		},
	})
	require.Error(t, err)

	var purchases int64
	require.NoError(t, f.db.Model(&models.Purchase{}).Count(&purchases).Error)
	require.Zero(t, purchases, "failed recording must not leave partial ledger rows")

	require.Empty(t, f.invoices.generated)
	require.Empty(t, f.email.invoiceTo)
}

func TestRecordPurchaseInvoiceFailureStillSucceeds(t *testing.T) {
	f := newCheckoutFixture(t)
	f.invoices.err = errFake

	course := models.Course{Title: "Resilient Course", Price: 500}
	require.NoError(t, f.db.Create(&course).Error)

	details, err := f.svc.RecordPurchase(f.user.ID, models.RecordPurchaseRequest{
		PaymentID: "pay_noinvoice",
		Items: []models.PurchaseLineItem{
			{ProductID: course.ID, ProductType: models.ProductTypeCourse, Amount: 500},
		},
	})
	require.NoError(t, err)
	require.Len(t, details, 1)

	// The ledger row is committed even though the invoice never rendered.
	var purchases int64
	require.NoError(t, f.db.Model(&models.Purchase{}).Where("payment_id = ?", "pay_noinvoice").Count(&purchases).Error)
	require.EqualValues(t, 1, purchases)
	require.Empty(t, f.email.invoiceTo)
}

func TestRecordPurchaseEmailFailureStillSucceeds(t *testing.T) {
	f := newCheckoutFixture(t)
	f.email.err = errFake

	course := models.Course{Title: "Resilient Course", Price: 500}
	require.NoError(t, f.db.Create(&course).Error)

	_, err := f.svc.RecordPurchase(f.user.ID, models.RecordPurchaseRequest{
		PaymentID: "pay_noemail",
		Items: []models.PurchaseLineItem{
			{ProductID: course.ID, ProductType: models.ProductTypeCourse, Amount: 500},
		},
	})
	require.NoError(t, err)
	require.Len(t, f.invoices.generated, 1)
}

func TestGetPurchaseHistory(t *testing.T) {
	f := newCheckoutFixture(t)

	course := models.Course{Title: "History Course", Price: 750}
	require.NoError(t, f.db.Create(&course).Error)
	require.NoError(t, f.db.Create(&models.Purchase{
		UserID: f.user.ID, ProductID: course.ID, ProductType: models.ProductTypeCourse,
		PaymentID: "pay_old", ProductAmount: 750,
	}).Error)

	history, err := f.svc.GetPurchaseHistory(f.user.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, "History Course", history[0].Title)
	require.InDelta(t, 750, history[0].ProductAmount, 0.001)

	other, err := f.svc.GetPurchaseHistory(f.user.ID + 1)
	require.NoError(t, err)
	require.Empty(t, other)
}
