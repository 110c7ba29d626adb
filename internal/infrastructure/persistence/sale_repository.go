package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/ledger"
	"github.com/pos/backend/internal/domain/shared"
)

const defaultRecentLimit = 50

// GormSaleRepository implements ledger.SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
	// allowNegativeStock preserves the historical oversell behavior.
	// When false, a sale that would drive stock negative is rejected.
	allowNegativeStock bool
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB, allowNegativeStock bool) *GormSaleRepository {
	return &GormSaleRepository{db: db, allowNegativeStock: allowNegativeStock}
}

// Create persists a sale, its line items, the matching stock decrements
// and the pending sync-outbox entry as one database transaction. A sale
// is all-or-nothing: any failure rolls back every write, including the
// stock mutations. Totals are persisted as supplied by the caller.
func (r *GormSaleRepository) Create(ctx context.Context, input ledger.NewSale) (*ledger.CreatedSale, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sale := &ledger.Sale{
		ID:          uuid.New(),
		Subtotal:    input.Totals.Subtotal,
		VATTotal:    input.Totals.VATTotal,
		Discount:    input.Totals.Discount,
		Total:       input.Totals.Total,
		PaymentType: input.PaymentType,
		CreatedAt:   time.Now(),
	}
	for _, it := range input.Items {
		sale.Items = append(sale.Items, ledger.SaleItem{
			ID:        uuid.New(),
			SaleID:    sale.ID,
			ProductID: it.ProductID,
			Name:      it.Name,
			Qty:       it.Qty,
			UnitPrice: it.UnitPrice,
			VATRate:   it.VATRate,
			LineTotal: ledger.LineTotal(it.Qty, it.UnitPrice),
		})
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(sale).Error; err != nil {
			return err
		}
		for i := range sale.Items {
			if err := tx.Omit(clause.Associations).Create(&sale.Items[i]).Error; err != nil {
				return err
			}
			if err := r.decrementStock(tx, sale.Items[i].ProductID, sale.Items[i].Qty); err != nil {
				return err
			}
		}

		entry, err := ledger.NewSaleOutboxEntry(sale)
		if err != nil {
			return err
		}
		return tx.Create(entry).Error
	})
	if err != nil {
		return nil, abortError(err)
	}

	return &ledger.CreatedSale{ID: sale.ID, CreatedAt: sale.CreatedAt}, nil
}

// decrementStock subtracts the sold quantity inside the sale
// transaction. A decrement that matches no product row fails the whole
// sale: the ledger must not silently record items for products that do
// not exist.
func (r *GormSaleRepository) decrementStock(tx *gorm.DB, productID uuid.UUID, qty decimal.Decimal) error {
	query := tx.Model(&catalog.Product{}).Where("id = ?", productID)
	if !r.allowNegativeStock {
		query = query.Where("stock >= ?", qty)
	}
	result := query.UpdateColumns(map[string]any{
		"stock":      gorm.Expr("stock - ?", qty),
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if !r.allowNegativeStock && r.productExists(tx, productID) {
			return shared.NewDomainError("INSUFFICIENT_STOCK",
				fmt.Sprintf("product %s does not have %s in stock", productID, qty))
		}
		return shared.NewDomainError("CONSTRAINT_VIOLATION",
			fmt.Sprintf("sale item references unknown product %s", productID))
	}
	return nil
}

func (r *GormSaleRepository) productExists(tx *gorm.DB, productID uuid.UUID) bool {
	var count int64
	tx.Model(&catalog.Product{}).Where("id = ?", productID).Count(&count)
	return count > 0
}

// abortError classifies a failed unit of work. The transaction-aborted
// sentinel guarantees to the caller that no partial state was written;
// the underlying cause stays reachable through errors.Is.
func abortError(err error) error {
	return fmt.Errorf("%w: %w", shared.ErrTransactionAborted, translateError(err))
}

// FindByID returns a sale with its items
func (r *GormSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Sale, error) {
	var sale ledger.Sale
	if err := r.db.WithContext(ctx).Preload("Items").First(&sale, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, translateError(err)
	}
	return &sale, nil
}

// ListRecent returns the newest sales first, items included
func (r *GormSaleRepository) ListRecent(ctx context.Context, limit int) ([]ledger.Sale, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	var sales []ledger.Sale
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Limit(limit).
		Find(&sales).Error; err != nil {
		return nil, translateError(err)
	}
	return sales, nil
}
