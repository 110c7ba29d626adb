package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pos/backend/internal/domain/setting"
	"github.com/pos/backend/internal/domain/shared"
)

// GormSettingRepository implements setting.Repository using GORM
type GormSettingRepository struct {
	db *gorm.DB
}

// NewGormSettingRepository creates a new GormSettingRepository
func NewGormSettingRepository(db *gorm.DB) *GormSettingRepository {
	return &GormSettingRepository{db: db}
}

// Set upserts the value under key. Non-string values are serialized to
// JSON; strings are stored as-is.
func (r *GormSettingRepository) Set(ctx context.Context, key string, value any) error {
	if key == "" {
		return shared.NewDomainError("INVALID_INPUT", "setting key must not be empty")
	}

	stored, err := encodeSetting(value)
	if err != nil {
		return shared.NewDomainError("INVALID_INPUT", "setting value is not serializable")
	}

	row := setting.Setting{Key: key, Value: stored}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&row).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Get returns the deserialized value for key. Deserialization is
// best-effort: a stored string that is not valid JSON is returned
// verbatim rather than raising.
func (r *GormSettingRepository) Get(ctx context.Context, key string) (any, error) {
	var row setting.Setting
	if err := r.db.WithContext(ctx).First(&row, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, translateError(err)
	}

	var value any
	if err := json.Unmarshal([]byte(row.Value), &value); err != nil {
		return row.Value, nil
	}
	return value, nil
}

func encodeSetting(value any) (string, error) {
	if s, ok := value.(string); ok {
		return s, nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
