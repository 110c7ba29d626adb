package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pos/backend/internal/domain/ledger"
	"github.com/pos/backend/internal/domain/report"
)

// topProductsLimit bounds the product ranking in a summary.
const topProductsLimit = 20

// GormSummaryRepository implements report.SummaryRepository using GORM
type GormSummaryRepository struct {
	db *gorm.DB
}

// NewGormSummaryRepository creates a new GormSummaryRepository
func NewGormSummaryRepository(db *gorm.DB) *GormSummaryRepository {
	return &GormSummaryRepository{db: db}
}

// Summarize aggregates the ledger over the inclusive start..end range.
// Bounds are normalized to YYYY-MM-DD; a missing bound defaults to the
// current date. Pure read: no side effects, default read consistency.
func (r *GormSummaryRepository) Summarize(ctx context.Context, start, end string) (*report.Summary, error) {
	now := time.Now()
	s := report.ToDay(start, now)
	e := report.ToDay(end, now)

	summary := &report.Summary{
		Range:        report.DateRange{Start: s, End: e},
		ByDay:        []report.DailyRevenue{},
		ByPayment:    []report.PaymentBreakdown{},
		TopProducts:  []report.ProductRevenue{},
		TotalRevenue: decimal.Zero,
	}
	db := r.db.WithContext(ctx)

	var totals struct {
		SaleCount    int64
		TotalRevenue decimal.Decimal
	}
	if err := db.Table("sales").
		Select("COUNT(*) AS sale_count, COALESCE(SUM(total), 0) AS total_revenue").
		Where("DATE(created_at) BETWEEN DATE(?) AND DATE(?)", s, e).
		Scan(&totals).Error; err != nil {
		return nil, translateError(err)
	}
	summary.SaleCount = totals.SaleCount
	summary.TotalRevenue = totals.TotalRevenue

	var byDay []struct {
		Day   string
		Total decimal.Decimal
	}
	if err := db.Table("sales").
		Select("DATE(created_at) AS day, COALESCE(SUM(total), 0) AS total").
		Where("DATE(created_at) BETWEEN DATE(?) AND DATE(?)", s, e).
		Group("DATE(created_at)").
		Order("day ASC").
		Scan(&byDay).Error; err != nil {
		return nil, translateError(err)
	}
	for _, d := range byDay {
		summary.ByDay = append(summary.ByDay, report.DailyRevenue{Day: d.Day, Total: d.Total})
	}

	var byPayment []struct {
		Payment string
		Count   int64
		Total   decimal.Decimal
	}
	if err := db.Table("sales").
		Select("payment_type AS payment, COUNT(*) AS count, COALESCE(SUM(total), 0) AS total").
		Where("DATE(created_at) BETWEEN DATE(?) AND DATE(?)", s, e).
		Group("payment_type").
		Order("total DESC").
		Scan(&byPayment).Error; err != nil {
		return nil, translateError(err)
	}
	for _, p := range byPayment {
		summary.ByPayment = append(summary.ByPayment, report.PaymentBreakdown{
			Payment: ledger.PaymentMethod(p.Payment),
			Count:   p.Count,
			Total:   p.Total,
		})
	}

	var top []struct {
		ProductID string
		Name      string
		Qty       decimal.Decimal
		Total     decimal.Decimal
	}
	if err := db.Table("sale_items si").
		Select("si.product_id AS product_id, si.name AS name, COALESCE(SUM(si.qty), 0) AS qty, COALESCE(SUM(si.line_total), 0) AS total").
		Joins("JOIN sales s ON s.id = si.sale_id").
		Where("DATE(s.created_at) BETWEEN DATE(?) AND DATE(?)", s, e).
		Group("si.product_id, si.name").
		Order("total DESC, si.product_id ASC").
		Limit(topProductsLimit).
		Scan(&top).Error; err != nil {
		return nil, translateError(err)
	}
	for _, t := range top {
		id, err := uuid.Parse(t.ProductID)
		if err != nil {
			return nil, err
		}
		summary.TopProducts = append(summary.TopProducts, report.ProductRevenue{
			ProductID: id,
			Name:      t.Name,
			Qty:       t.Qty,
			Total:     t.Total,
		})
	}

	return summary, nil
}
