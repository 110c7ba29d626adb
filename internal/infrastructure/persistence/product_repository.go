package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/shared"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// List returns all products ordered by name
func (r *GormProductRepository) List(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := r.db.WithContext(ctx).Order("name").Find(&products).Error; err != nil {
		return nil, translateError(err)
	}
	return products, nil
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, translateError(err)
	}
	return &product, nil
}

// FindByBarcode finds a product by its barcode. This is a single lookup
// against the unique barcode index.
func (r *GormProductRepository) FindByBarcode(ctx context.Context, barcode string) (*catalog.Product, error) {
	if barcode == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "barcode must not be empty")
	}
	var product catalog.Product
	if err := r.db.WithContext(ctx).First(&product, "barcode = ?", barcode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, translateError(err)
	}
	return &product, nil
}

// Insert persists a new product. A missing identifier is assigned here
// so callers may pass pre-built or fresh products alike; both go
// through the same validation.
func (r *GormProductRepository) Insert(ctx context.Context, product *catalog.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}
	if product.ID == uuid.Nil {
		product.BaseEntity = shared.NewBaseEntity()
	}
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		if isUniqueViolation(err, "products.barcode") {
			return shared.ErrDuplicateBarcode
		}
		return translateError(err)
	}
	return nil
}

// AdjustStock applies a signed delta to the product's stock level and
// refreshes the updated timestamp. Single-writer desktop model: the
// read-modify-write needs no cross-process coordination, and atomicity
// with a surrounding sale is provided by the ledger's transaction.
func (r *GormProductRepository) AdjustStock(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	return adjustStock(r.db.WithContext(ctx), id, delta)
}

// adjustStock runs against either the base handle or a transaction.
func adjustStock(db *gorm.DB, id uuid.UUID, delta decimal.Decimal) error {
	result := db.Model(&catalog.Product{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"stock":      gorm.Expr("stock + ?", delta),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
