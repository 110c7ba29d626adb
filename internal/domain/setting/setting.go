package setting

import "context"

// Setting is one key/value configuration row. The value is an opaque
// serialized payload.
type Setting struct {
	Key   string `gorm:"type:text;primaryKey"`
	Value string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Setting) TableName() string {
	return "settings"
}

// Repository is a key/value store for application configuration.
type Repository interface {
	// Get returns the deserialized value for key, or shared.ErrNotFound.
	// When the stored payload cannot be deserialized, the raw stored
	// string is returned instead of an error.
	Get(ctx context.Context, key string) (any, error)

	// Set upserts the value under key, serializing it to a storable
	// string.
	Set(ctx context.Context, key string, value any) error
}
