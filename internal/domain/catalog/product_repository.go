package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductRepository defines the persistence contract for products.
// Implementations must make FindByBarcode a single indexed lookup: it
// runs synchronously on every barcode-scan event.
type ProductRepository interface {
	// List returns all products ordered by name.
	List(ctx context.Context) ([]Product, error)

	// FindByID returns the product with the given identifier or
	// shared.ErrNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByBarcode returns the product with the given barcode or
	// shared.ErrNotFound.
	FindByBarcode(ctx context.Context, barcode string) (*Product, error)

	// Insert persists a new product. It fails with
	// shared.ErrDuplicateBarcode when the barcode is already taken.
	Insert(ctx context.Context, product *Product) error

	// AdjustStock applies a signed quantity delta to the product's
	// stock and refreshes its updated timestamp. Atomicity with
	// respect to a surrounding sale is the ledger's responsibility.
	AdjustStock(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error
}
