package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PaymentMethod is the closed set of accepted payment types.
type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentCard  PaymentMethod = "card"
	PaymentMixed PaymentMethod = "mixed"
)

// Valid reports whether the payment method is one of the accepted values.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentMixed:
		return true
	}
	return false
}

// Sale is one completed, immutable ledger entry. Sales are append-only:
// no update or delete operation exists.
type Sale struct {
	ID          uuid.UUID       `gorm:"type:text;primaryKey"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	VATTotal    decimal.Decimal `gorm:"column:vat_total;type:decimal(18,4);not null"`
	Discount    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Total       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	PaymentType PaymentMethod   `gorm:"type:text;not null"`
	Synced      bool            `gorm:"not null;default:false"`
	CreatedAt   time.Time
	Items       []SaleItem `gorm:"foreignKey:SaleID"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// SaleItem is one line of a sale. It is exclusively owned by its sale
// and cascade-deleted with it. ProductID is a weak reference: the
// product may later be renamed or removed without touching history,
// which is why Name denormalizes the product name at time of sale.
type SaleItem struct {
	ID        uuid.UUID       `gorm:"type:text;primaryKey"`
	SaleID    uuid.UUID       `gorm:"type:text;not null;index"`
	Sale      *Sale           `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"-"`
	ProductID uuid.UUID       `gorm:"type:text;not null;index"`
	Name      string          `gorm:"type:text"`
	Qty       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	VATRate   decimal.Decimal `gorm:"column:vat_rate;type:decimal(6,4);not null;default:0"`
	LineTotal decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (SaleItem) TableName() string {
	return "sale_items"
}

// LineTotal computes a line total rounded to two decimal places.
func LineTotal(qty, unitPrice decimal.Decimal) decimal.Decimal {
	return qty.Mul(unitPrice).Round(2)
}

// Totals carries the caller-computed sale totals. The ledger persists
// them verbatim and does not recompute them from the line items; the
// caller owns that arithmetic.
type Totals struct {
	Subtotal decimal.Decimal
	VATTotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// NewSaleItem is one requested line of a new sale.
type NewSaleItem struct {
	ProductID uuid.UUID
	Name      string
	Qty       decimal.Decimal
	UnitPrice decimal.Decimal
	VATRate   decimal.Decimal
}

// NewSale is the input to SaleRepository.Create.
type NewSale struct {
	PaymentType PaymentMethod
	Items       []NewSaleItem
	Totals      Totals
}

// Validate checks the structural invariants of the request. Totals are
// deliberately not cross-checked against the items.
func (s *NewSale) Validate() error {
	if !s.PaymentType.Valid() {
		return shared.NewDomainError("INVALID_INPUT", "payment type must be cash, card or mixed")
	}
	if len(s.Items) == 0 {
		return shared.NewDomainError("INVALID_INPUT", "a sale requires at least one item")
	}
	for _, item := range s.Items {
		if item.ProductID == uuid.Nil {
			return shared.NewDomainError("INVALID_INPUT", "sale item requires a product reference")
		}
		if !item.Qty.IsPositive() {
			return shared.NewDomainError("INVALID_INPUT", "sale item quantity must be positive")
		}
		if item.UnitPrice.IsNegative() {
			return shared.NewDomainError("INVALID_INPUT", "sale item unit price must not be negative")
		}
		if item.VATRate.IsNegative() {
			return shared.NewDomainError("INVALID_INPUT", "sale item tax rate must not be negative")
		}
	}
	return nil
}

// CreatedSale is returned to the caller after a successful commit.
// Downstream effects (printing, UI refresh) are triggered by the caller
// outside the transaction boundary.
type CreatedSale struct {
	ID        uuid.UUID
	CreatedAt time.Time
}
