package ledger

import (
	"context"

	"github.com/google/uuid"
)

// SaleRepository is the append-only ledger of completed sales.
type SaleRepository interface {
	// Create persists the sale, its line items and the matching stock
	// decrements as a single unit of work. Any failure rolls the whole
	// unit back: no sale row, item row or stock mutation survives.
	Create(ctx context.Context, sale NewSale) (*CreatedSale, error)

	// FindByID returns a sale with its items or shared.ErrNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)

	// ListRecent returns the newest sales first, items included.
	ListRecent(ctx context.Context, limit int) ([]Sale, error)
}
