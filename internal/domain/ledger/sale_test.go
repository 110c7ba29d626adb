package ledger

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pos/backend/internal/domain/shared"
)

func validNewSale() NewSale {
	return NewSale{
		PaymentType: PaymentCash,
		Items: []NewSaleItem{{
			ProductID: uuid.New(),
			Name:      "Cola",
			Qty:       decimal.NewFromInt(2),
			UnitPrice: decimal.RequireFromString("10.0"),
			VATRate:   decimal.RequireFromString("0.2"),
		}},
		Totals: Totals{
			Subtotal: decimal.RequireFromString("20.0"),
			VATTotal: decimal.RequireFromString("4.0"),
			Total:    decimal.RequireFromString("24.0"),
		},
	}
}

func TestPaymentMethod_Valid(t *testing.T) {
	assert.True(t, PaymentCash.Valid())
	assert.True(t, PaymentCard.Valid())
	assert.True(t, PaymentMixed.Valid())
	assert.False(t, PaymentMethod("cheque").Valid())
	assert.False(t, PaymentMethod("").Valid())
	assert.False(t, PaymentMethod("CASH").Valid())
}

func TestNewSale_Validate(t *testing.T) {
	t.Run("accepts a well-formed sale", func(t *testing.T) {
		sale := validNewSale()
		assert.NoError(t, sale.Validate())
	})

	t.Run("rejects unknown payment type", func(t *testing.T) {
		sale := validNewSale()
		sale.PaymentType = "voucher"
		assert.ErrorIs(t, sale.Validate(), shared.ErrInvalidInput)
	})

	t.Run("rejects empty item list", func(t *testing.T) {
		sale := validNewSale()
		sale.Items = nil
		assert.ErrorIs(t, sale.Validate(), shared.ErrInvalidInput)
	})

	t.Run("rejects item without product reference", func(t *testing.T) {
		sale := validNewSale()
		sale.Items[0].ProductID = uuid.Nil
		assert.ErrorIs(t, sale.Validate(), shared.ErrInvalidInput)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		sale := validNewSale()
		sale.Items[0].Qty = decimal.Zero
		assert.ErrorIs(t, sale.Validate(), shared.ErrInvalidInput)

		sale.Items[0].Qty = decimal.NewFromInt(-1)
		assert.ErrorIs(t, sale.Validate(), shared.ErrInvalidInput)
	})

	t.Run("rejects negative unit price and tax rate", func(t *testing.T) {
		sale := validNewSale()
		sale.Items[0].UnitPrice = decimal.NewFromInt(-1)
		assert.ErrorIs(t, sale.Validate(), shared.ErrInvalidInput)

		sale = validNewSale()
		sale.Items[0].VATRate = decimal.NewFromInt(-1)
		assert.ErrorIs(t, sale.Validate(), shared.ErrInvalidInput)
	})

	t.Run("totals are taken as supplied", func(t *testing.T) {
		sale := validNewSale()
		sale.Totals.Total = decimal.RequireFromString("999.99")
		assert.NoError(t, sale.Validate())
	})
}

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name  string
		qty   string
		price string
		want  string
	}{
		{"integer quantities", "2", "10.0", "20"},
		{"fractional quantity", "0.5", "7.5", "3.75"},
		{"rounds half up to two places", "3", "0.335", "1.01"},
		{"zero price", "4", "0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LineTotal(decimal.RequireFromString(tt.qty), decimal.RequireFromString(tt.price))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestNewSaleOutboxEntry(t *testing.T) {
	sale := &Sale{
		ID:          uuid.New(),
		Total:       decimal.RequireFromString("24.0"),
		PaymentType: PaymentCash,
		Items: []SaleItem{{
			ID:        uuid.New(),
			Name:      "Cola",
			Qty:       decimal.NewFromInt(2),
			LineTotal: decimal.RequireFromString("20.0"),
		}},
	}

	entry, err := NewSaleOutboxEntry(sale)
	require.NoError(t, err)

	assert.Equal(t, OutboxTypeSale, entry.Type)
	assert.Equal(t, sale.ID, entry.AggregateID)
	assert.Equal(t, OutboxStatusPending, entry.Status)
	assert.NotEqual(t, uuid.Nil, entry.ID)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(entry.Payload), &payload))
	items, ok := payload["Items"].([]any)
	require.True(t, ok, "payload = %v", payload)
	require.Len(t, items, 1)
}
