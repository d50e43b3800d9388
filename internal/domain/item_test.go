package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestNewItem(t *testing.T) {
	tests := []struct {
		name      string
		itemName  string
		price     domain.Money
		opts      []domain.ItemOption
		wantSKU   string
		wantError error
	}{
		{
			name:     "positive price: ok",
			itemName: "Double Bass Headset",
			price:    usd(100),
		},
		{
			name:     "zero price: ok",
			itemName: "Sticker",
			price:    domain.NewMoney(decimal.Zero, currency.EUR),
		},
		{
			name:     "fractional price: ok",
			itemName: "Ergonomic Mouse V2",
			price:    domain.NewMoney(decimal.RequireFromString("49.99"), currency.USD),
		},
		{
			name:     "explicit sku: ok",
			itemName: "Demo Item",
			price:    usd(200),
			opts:     []domain.ItemOption{domain.WithSKU("A")},
			wantSKU:  "A",
		},
		{
			name:      "negative price: error",
			itemName:  "External SSD",
			price:     domain.NewMoney(decimal.NewFromFloat(-5.0), currency.USD),
			wantError: domain.ErrInvalidPrice,
		},
		{
			name:      "empty name: error",
			itemName:  "  ",
			price:     usd(1),
			wantError: domain.ErrEmptyName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := domain.NewItem(tt.itemName, "description", tt.price, tt.opts...)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.itemName, item.Name())
			assert.Equal(t, "description", item.Description())
			assert.True(t, tt.price.Amount.Equal(item.Price().Amount))
			assert.Equal(t, tt.price.Currency, item.Price().Currency)
			assert.True(t, item.CreatedAt().IsZero())

			if tt.wantSKU != "" {
				assert.Equal(t, tt.wantSKU, item.SKU())
				return
			}
			_, err = uuid.Parse(item.SKU())
			assert.NoError(t, err)
		})
	}
}

func TestNewItem_GeneratesDistinctSKUs(t *testing.T) {
	first := randomItem(t)
	second := randomItem(t)

	assert.NotEqual(t, first.SKU(), second.SKU())
}

func TestItemEqual(t *testing.T) {
	item := randomItem(t, domain.WithSKU("sku-1"))
	sameSKU, err := domain.NewItem("Other name", "other description", usd(999), domain.WithSKU("sku-1"))
	require.NoError(t, err)
	otherSKU := randomItem(t, domain.WithSKU("sku-2"))

	var nilItem *domain.Item

	tests := []struct {
		name  string
		other any
		want  bool
	}{
		{name: "same sku, different fields", other: sameSKU, want: true},
		{name: "pointer with same sku", other: &sameSKU, want: true},
		{name: "different sku", other: otherSKU, want: false},
		{name: "nil item pointer", other: nilItem, want: false},
		{name: "string", other: "sku-1", want: false},
		{name: "nil", other: nil, want: false},
		{name: "int", other: 42, want: false},
		{name: "item without sku", other: domain.Item{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, item.Equal(tt.other))
		})
	}

	t.Run("items without sku never equal", func(t *testing.T) {
		assert.False(t, domain.Item{}.Equal(domain.Item{}))
	})
}

func TestRestoreItem(t *testing.T) {
	createdAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	item, err := domain.RestoreItem("sku-1", "Keyboard", "Comfortable keyboard", usd(79), createdAt)
	require.NoError(t, err)
	assert.Equal(t, "sku-1", item.SKU())
	assert.Equal(t, createdAt, item.CreatedAt())

	_, err = domain.RestoreItem("", "Keyboard", "", usd(79), createdAt)
	require.EqualError(t, err, "sku is empty")

	_, err = domain.RestoreItem("sku-2", "Keyboard", "", usd(-1), createdAt)
	require.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestMoney(t *testing.T) {
	line := usd(25).Times(4)
	assert.True(t, decimal.NewFromInt(100).Equal(line.Amount))
	assert.Equal(t, "100.00 USD", line.String())

	sum, err := usd(1).Add(usd(2))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(3).Equal(sum.Amount))

	_, err = usd(1).Add(domain.NewMoney(decimal.NewFromInt(1), currency.EUR))
	require.ErrorIs(t, err, domain.ErrCurrencyMismatch)
}
