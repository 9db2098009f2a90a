package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/finversity/finversity-backend/internal/models"
	"github.com/finversity/finversity-backend/internal/repository"
)

func TestDashboardStatsZeroFilled(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(repository.NewDashboardRepository(db))

	stats, err := svc.Stats(4)
	require.NoError(t, err)
	require.Len(t, stats.Months, 4)
	require.Equal(t, []int64{0, 0, 0, 0}, stats.NewUsers)
	require.Equal(t, []int64{0, 0, 0, 0}, stats.CoursePurchases)
	require.Equal(t, []int64{0, 0, 0, 0}, stats.EbookPurchases)
	require.Equal(t, []float64{0, 0, 0, 0}, stats.Revenue)
}

func TestDashboardStatsBucketsByMonth(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(repository.NewDashboardRepository(db))

	now := time.Now()
	// Anchor mid-month so subtracting months never rolls into a neighbor.
	midMonth := time.Date(now.Year(), now.Month(), 15, 12, 0, 0, 0, now.Location())
	twoMonthsAgo := midMonth.AddDate(0, -2, 0)

	require.NoError(t, db.Create(&models.User{
		FullName: "Old User", Email: "old@example.com", Password: "x", CreatedAt: twoMonthsAgo,
	}).Error)
	require.NoError(t, db.Create(&models.User{
		FullName: "New User", Email: "new@example.com", Password: "x", CreatedAt: now,
	}).Error)

	require.NoError(t, db.Create(&models.Purchase{
		UserID: 1, ProductID: 1, ProductType: models.ProductTypeCourse,
		PaymentID: "pay_1", ProductAmount: 999, CreatedAt: now,
	}).Error)
	require.NoError(t, db.Create(&models.Purchase{
		UserID: 1, ProductID: 2, ProductType: models.ProductTypeEbook,
		PaymentID: "pay_2", ProductAmount: 299, CreatedAt: now,
	}).Error)
	require.NoError(t, db.Create(&models.Purchase{
		UserID: 2, ProductID: 1, ProductType: models.ProductTypeCourse,
		PaymentID: "pay_3", ProductAmount: 999, CreatedAt: twoMonthsAgo,
	}).Error)

	stats, err := svc.Stats(3)
	require.NoError(t, err)
	require.Len(t, stats.Months, 3)

	// Oldest month first: index 0 is two months ago, index 2 is now.
	require.Equal(t, []int64{1, 0, 1}, stats.NewUsers)
	require.Equal(t, []int64{1, 0, 1}, stats.CoursePurchases)
	require.Equal(t, []int64{0, 0, 1}, stats.EbookPurchases)
	require.InDelta(t, 999, stats.Revenue[0], 0.001)
	require.Zero(t, stats.Revenue[1])
	require.InDelta(t, 1298, stats.Revenue[2], 0.001)
}

func TestDashboardStatsExcludesOlderRows(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(repository.NewDashboardRepository(db))

	old := time.Now().AddDate(0, -6, 0)
	require.NoError(t, db.Create(&models.Purchase{
		UserID: 1, ProductID: 1, ProductType: models.ProductTypeCourse,
		PaymentID: "pay_ancient", ProductAmount: 500, CreatedAt: old,
	}).Error)

	stats, err := svc.Stats(2)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 0}, stats.CoursePurchases)
	require.Equal(t, []float64{0, 0}, stats.Revenue)
}
