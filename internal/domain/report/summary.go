package report

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// DayFormat is the canonical calendar-day representation.
const DayFormat = "2006-01-02"

// DateRange is an inclusive calendar-day range.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DailyRevenue is one day of the per-day breakdown.
type DailyRevenue struct {
	Day   string          `json:"day"`
	Total decimal.Decimal `json:"total"`
}

// PaymentBreakdown aggregates sales per payment method.
type PaymentBreakdown struct {
	Payment ledger.PaymentMethod `json:"payment"`
	Count   int64                `json:"count"`
	Total   decimal.Decimal      `json:"total"`
}

// ProductRevenue is one entry of the top-products ranking.
type ProductRevenue struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	Qty       decimal.Decimal `json:"qty"`
	Total     decimal.Decimal `json:"total"`
}

// Summary is the aggregated view over the ledger for a date range.
type Summary struct {
	Range        DateRange          `json:"range"`
	SaleCount    int64              `json:"saleCount"`
	TotalRevenue decimal.Decimal    `json:"totalRevenue"`
	ByDay        []DailyRevenue     `json:"byDay"`
	ByPayment    []PaymentBreakdown `json:"byPayment"`
	TopProducts  []ProductRevenue   `json:"topProducts"`
}

// SummaryRepository is the read-only aggregation contract over the
// ledger. No side effects, no transaction beyond default read
// consistency.
type SummaryRepository interface {
	// Summarize aggregates the inclusive start..end range. Bounds are
	// normalized to YYYY-MM-DD; a missing bound defaults to the
	// current date.
	Summarize(ctx context.Context, start, end string) (*Summary, error)
}

// ToDay normalizes a date input to its canonical YYYY-MM-DD form by
// keeping the date part of an ISO-like string. Inputs that do not start
// with a parseable date fall back to the fallback time's date.
func ToDay(input string, fallback time.Time) string {
	input = strings.TrimSpace(input)
	if len(input) >= len(DayFormat) {
		day := input[:len(DayFormat)]
		if _, err := time.Parse(DayFormat, day); err == nil {
			return day
		}
	}
	return fallback.Format(DayFormat)
}
