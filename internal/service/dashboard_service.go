package service

import (
	"time"

	"github.com/finversity/finversity-backend/internal/models"
	"github.com/finversity/finversity-backend/internal/repository"
)

type DashboardService struct {
	dashboardRepo *repository.DashboardRepository
}

func NewDashboardService(dashboardRepo *repository.DashboardRepository) *DashboardService {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
	}
}

// Stats aggregates signups, purchase counts and revenue per calendar month
// over a trailing window. Every month in the window gets an entry, oldest
// first, zero-filled when no data landed in it.
func (s *DashboardService) Stats(months int) (*models.DashboardStats, error) {
	if months < 1 {
		months = 1
	}

	now := time.Now()
	windowStart := monthStart(now).AddDate(0, -(months - 1), 0)

	labels := make([]string, months)
	index := make(map[string]int, months)
	for i := 0; i < months; i++ {
		m := windowStart.AddDate(0, i, 0)
		key := m.Format("2006-01")
		labels[i] = m.Format("Jan 2006")
		index[key] = i
	}

	stats := &models.DashboardStats{
		Months:          labels,
		NewUsers:        make([]int64, months),
		CoursePurchases: make([]int64, months),
		EbookPurchases:  make([]int64, months),
		Revenue:         make([]float64, months),
	}

	signups, err := s.dashboardRepo.UserSignupsSince(windowStart)
	if err != nil {
		return nil, err
	}
	for _, ts := range signups {
		if i, ok := index[ts.Format("2006-01")]; ok {
			stats.NewUsers[i]++
		}
	}

	purchases, err := s.dashboardRepo.PurchasesSince(windowStart)
	if err != nil {
		return nil, err
	}
	for _, p := range purchases {
		i, ok := index[p.CreatedAt.Format("2006-01")]
		if !ok {
			continue
		}
		switch p.ProductType {
		case models.ProductTypeCourse:
			stats.CoursePurchases[i]++
		case models.ProductTypeEbook:
			stats.EbookPurchases[i]++
		}
		stats.Revenue[i] += p.ProductAmount
	}

	return stats, nil
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
