package ledger

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OutboxStatus represents the delivery state of an outbox entry.
type OutboxStatus string

const (
	OutboxStatusPending OutboxStatus = "PENDING"
	OutboxStatusSynced  OutboxStatus = "SYNCED"
)

// OutboxTypeSale marks entries that carry a completed sale.
const OutboxTypeSale = "sale"

// OutboxEntry is one row of the durable sync queue. Entries are written
// in the same transaction as the sale they describe, so a committed sale
// always has a matching pending entry. The transport that drains the
// queue lives outside this core.
type OutboxEntry struct {
	ID          uuid.UUID    `gorm:"type:text;primaryKey"`
	Type        string       `gorm:"type:text;not null"`
	AggregateID uuid.UUID    `gorm:"type:text;not null;index"`
	Payload     string       `gorm:"type:text;not null"`
	Status      OutboxStatus `gorm:"type:text;not null;default:'PENDING'"`
	CreatedAt   time.Time
}

// TableName returns the table name for GORM
func (OutboxEntry) TableName() string {
	return "sync_outbox"
}

// NewSaleOutboxEntry builds the pending outbox entry for a committed sale.
func NewSaleOutboxEntry(sale *Sale) (*OutboxEntry, error) {
	payload, err := json.Marshal(sale)
	if err != nil {
		return nil, err
	}
	return &OutboxEntry{
		ID:          uuid.New(),
		Type:        OutboxTypeSale,
		AggregateID: sale.ID,
		Payload:     string(payload),
		Status:      OutboxStatusPending,
		CreatedAt:   time.Now(),
	}, nil
}

// OutboxRepository drains the sync queue.
type OutboxRepository interface {
	// FindPending returns pending entries, oldest first.
	FindPending(ctx context.Context, limit int) ([]OutboxEntry, error)

	// MarkSynced flips the given entries to SYNCED and stamps the
	// synced flag on the sales they reference.
	MarkSynced(ctx context.Context, ids []uuid.UUID) error
}
