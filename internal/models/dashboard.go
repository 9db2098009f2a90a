package models

// DashboardStats carries month-bucketed arrays, oldest month first. Every
// array has one entry per month in the requested window, zero-filled.
type DashboardStats struct {
	Months          []string  `json:"months"`
	NewUsers        []int64   `json:"new_users"`
	CoursePurchases []int64   `json:"course_purchases"`
	EbookPurchases  []int64   `json:"ebook_purchases"`
	Revenue         []float64 `json:"revenue"`
}
