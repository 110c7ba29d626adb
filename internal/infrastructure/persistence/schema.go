package persistence

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/ledger"
	"github.com/pos/backend/internal/domain/setting"
)

// tables lists every model in creation order. sale_items carries a
// foreign key to sales, so sales must exist first.
func tables() []any {
	return []any{
		&catalog.Product{},
		&ledger.Sale{},
		&ledger.SaleItem{},
		&setting.Setting{},
		&ledger.OutboxEntry{},
	}
}

// additiveColumns lists columns introduced after the original schema.
// Each is added with its tag default when missing; existing tables are
// never rebuilt, so the additions are idempotent and commutative.
func additiveColumns() []struct {
	Model  any
	Column string
} {
	return []struct {
		Model  any
		Column string
	}{
		{&catalog.Product{}, "VATRate"},
		{&catalog.Product{}, "Stock"},
		{&catalog.Product{}, "UpdatedAt"},
		{&ledger.Sale{}, "Discount"},
		{&ledger.Sale{}, "Synced"},
		{&ledger.SaleItem{}, "Name"},
		{&ledger.SaleItem{}, "VATRate"},
	}
}

// Migrate ensures every required table exists and every expected column
// is present. It only ever adds: tables are created when missing and
// later-introduced columns are appended with safe defaults. Running it
// N times yields the same schema as running it once, on any starting
// schema version.
func Migrate(db *gorm.DB) error {
	m := db.Migrator()

	for _, model := range tables() {
		if m.HasTable(model) {
			continue
		}
		if err := m.CreateTable(model); err != nil {
			return fmt.Errorf("failed to create table for %T: %w", model, err)
		}
	}

	for _, add := range additiveColumns() {
		if m.HasColumn(add.Model, add.Column) {
			continue
		}
		if err := m.AddColumn(add.Model, add.Column); err != nil {
			return fmt.Errorf("failed to add column %s to %T: %w", add.Column, add.Model, err)
		}
	}

	return nil
}
