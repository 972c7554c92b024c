// Package report aggregates read-only numbers for the admin dashboard.
package report

import (
	"time"

	"gorm.io/gorm"

	"washline/entities"
)

type Summary struct {
	ByStatus map[string]int64 `json:"by_status"`
	Orders   int64            `json:"orders"`
	Payments int64            `json:"payments"`
	Revenue  float64          `json:"revenue"`
	From     string           `json:"from,omitempty"`
	To       string           `json:"to,omitempty"`
}

type Service interface {
	Summarize(branchID uint, from, to *time.Time) (*Summary, error)
}

// DayRange turns inclusive from/to day strings into the half-open
// [from, to+1d) range Summarize takes. Days are read in the business
// timezone, not the server's. Empty or malformed inputs yield nil.
func DayRange(from, to string, loc *time.Location) (fromT, toT *time.Time) {
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.ParseInLocation("2006-01-02", from, loc); err == nil {
		fromT = &t
	}
	if t, err := time.ParseInLocation("2006-01-02", to, loc); err == nil {
		t = t.AddDate(0, 0, 1)
		toT = &t
	}
	return fromT, toT
}

type service struct{ db *gorm.DB }

func New(db *gorm.DB) Service { return &service{db: db} }

func (s *service) Summarize(branchID uint, from, to *time.Time) (*Summary, error) {
	out := &Summary{ByStatus: map[string]int64{}}

	oq := s.db.Model(&entities.Order{})
	if branchID != 0 {
		oq = oq.Where("branch_id = ?", branchID)
	}
	if from != nil {
		oq = oq.Where("created_at >= ?", *from)
		out.From = from.Format("2006-01-02")
	}
	if to != nil {
		oq = oq.Where("created_at < ?", *to)
		out.To = to.Format("2006-01-02")
	}

	type statusCount struct {
		Status string
		N      int64
	}
	var counts []statusCount
	if err := oq.Select("status, COUNT(*) as n").Group("status").Scan(&counts).Error; err != nil {
		return nil, err
	}
	for _, c := range counts {
		out.ByStatus[c.Status] = c.N
		out.Orders += c.N
	}

	// Transactions carry no branch of their own; scope through the order.
	tq := s.db.Model(&entities.PaymentTransaction{}).
		Joins("JOIN orders ON orders.order_id = payment_transactions.order_id")
	if branchID != 0 {
		tq = tq.Where("orders.branch_id = ?", branchID)
	}
	if from != nil {
		tq = tq.Where("payment_transactions.created_at >= ?", *from)
	}
	if to != nil {
		tq = tq.Where("payment_transactions.created_at < ?", *to)
	}
	var agg struct {
		N   int64
		Sum float64
	}
	if err := tq.Select("COUNT(*) as n, COALESCE(SUM(amount),0) as sum").Scan(&agg).Error; err != nil {
		return nil, err
	}
	out.Payments = agg.N
	out.Revenue = agg.Sum
	return out, nil
}
