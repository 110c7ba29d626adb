package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pos/backend/internal/domain/ledger"
)

// GormOutboxRepository implements ledger.OutboxRepository using GORM
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GormOutboxRepository
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// FindPending returns pending entries, oldest first
func (r *GormOutboxRepository) FindPending(ctx context.Context, limit int) ([]ledger.OutboxEntry, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	var entries []ledger.OutboxEntry
	if err := r.db.WithContext(ctx).
		Where("status = ?", ledger.OutboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, translateError(err)
	}
	return entries, nil
}

// MarkSynced flips the entries to SYNCED and stamps the synced flag on
// the sales they reference, in one transaction.
func (r *GormOutboxRepository) MarkSynced(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&ledger.OutboxEntry{}).
			Where("id IN ?", ids).
			Update("status", ledger.OutboxStatusSynced).Error; err != nil {
			return err
		}
		return tx.Model(&ledger.Sale{}).
			Where("id IN (?)", tx.Model(&ledger.OutboxEntry{}).
				Select("aggregate_id").
				Where("id IN ? AND type = ?", ids, ledger.OutboxTypeSale)).
			Update("synced", true).Error
	})
	if err != nil {
		return translateError(err)
	}
	return nil
}
