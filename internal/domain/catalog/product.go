package catalog

import (
	"strings"
	"time"

	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DefaultVATRate is applied when a product is created without an
// explicit tax rate.
var DefaultVATRate = decimal.NewFromFloat(0.20)

// Product represents a sellable item in the catalog.
// Stock is a plain quantity with no hard floor: an oversold sale may
// drive it negative unless the store is configured to reject that.
type Product struct {
	shared.BaseEntity
	Barcode *string         `gorm:"type:text;uniqueIndex"`
	Name    string          `gorm:"type:text;not null"`
	Price   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	VATRate decimal.Decimal `gorm:"column:vat_rate;type:decimal(6,4);not null;default:0.2"`
	Stock   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product with a generated identifier.
// The name is trimmed and must be non-empty; the price must not be
// negative. A zero vatRate falls back to DefaultVATRate.
func NewProduct(name string, price decimal.Decimal) (*Product, error) {
	product := &Product{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Price:      price,
		VATRate:    DefaultVATRate,
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	return product, nil
}

// Validate normalizes and checks the product before persistence. The
// name is trimmed in place. Hand-built products go through the same
// checks as ones from NewProduct.
func (p *Product) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return shared.NewDomainError("INVALID_INPUT", "product name is required")
	}
	if p.Price.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "product price must not be negative")
	}
	if p.VATRate.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "tax rate must not be negative")
	}
	if p.Stock.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "opening stock must not be negative")
	}
	return nil
}

// SetBarcode sets the product barcode. Whitespace is trimmed and an
// empty barcode is stored as NULL so it does not collide on the unique
// index.
func (p *Product) SetBarcode(barcode string) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		p.Barcode = nil
		return
	}
	p.Barcode = &barcode
}

// SetVATRate overrides the default tax rate.
func (p *Product) SetVATRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "tax rate must not be negative")
	}
	p.VATRate = rate
	return nil
}

// SetInitialStock sets the opening stock level.
func (p *Product) SetInitialStock(stock decimal.Decimal) {
	p.Stock = stock
	p.UpdatedAt = time.Now()
}
