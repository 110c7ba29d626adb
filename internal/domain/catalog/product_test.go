package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pos/backend/internal/domain/shared"
)

func TestNewProduct(t *testing.T) {
	t.Run("creates product with defaults", func(t *testing.T) {
		product, err := NewProduct("Cola", decimal.RequireFromString("10.0"))
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, product.ID)
		assert.Equal(t, "Cola", product.Name)
		assert.True(t, product.VATRate.Equal(DefaultVATRate))
		assert.True(t, product.Stock.IsZero())
		assert.Nil(t, product.Barcode)
	})

	t.Run("trims the name", func(t *testing.T) {
		product, err := NewProduct("  Bread  ", decimal.NewFromInt(5))
		require.NoError(t, err)
		assert.Equal(t, "Bread", product.Name)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewProduct("   ", decimal.NewFromInt(5))
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewProduct("Cola", decimal.NewFromInt(-1))
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})

	t.Run("allows zero price", func(t *testing.T) {
		_, err := NewProduct("Sample", decimal.Zero)
		assert.NoError(t, err)
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("trims the name in place", func(t *testing.T) {
		product := Product{Name: "  Cola  ", Price: decimal.NewFromInt(10)}
		require.NoError(t, product.Validate())
		assert.Equal(t, "Cola", product.Name)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		product := Product{Name: "   ", Price: decimal.NewFromInt(10)}
		assert.ErrorIs(t, product.Validate(), shared.ErrInvalidInput)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		product := Product{Name: "Cola", Price: decimal.NewFromInt(-5)}
		assert.ErrorIs(t, product.Validate(), shared.ErrInvalidInput)
	})

	t.Run("rejects negative tax rate and opening stock", func(t *testing.T) {
		product := Product{Name: "Cola", Price: decimal.NewFromInt(5), VATRate: decimal.NewFromInt(-1)}
		assert.ErrorIs(t, product.Validate(), shared.ErrInvalidInput)

		product = Product{Name: "Cola", Price: decimal.NewFromInt(5), Stock: decimal.NewFromInt(-1)}
		assert.ErrorIs(t, product.Validate(), shared.ErrInvalidInput)
	})
}

func TestProduct_SetBarcode(t *testing.T) {
	product, err := NewProduct("Cola", decimal.NewFromInt(10))
	require.NoError(t, err)

	t.Run("stores trimmed barcode", func(t *testing.T) {
		product.SetBarcode("  869000123  ")
		require.NotNil(t, product.Barcode)
		assert.Equal(t, "869000123", *product.Barcode)
	})

	t.Run("blank barcode clears to nil", func(t *testing.T) {
		product.SetBarcode("   ")
		assert.Nil(t, product.Barcode)
	})
}

func TestProduct_SetVATRate(t *testing.T) {
	product, err := NewProduct("Cola", decimal.NewFromInt(10))
	require.NoError(t, err)

	require.NoError(t, product.SetVATRate(decimal.RequireFromString("0.08")))
	assert.True(t, product.VATRate.Equal(decimal.RequireFromString("0.08")))

	err = product.SetVATRate(decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}
