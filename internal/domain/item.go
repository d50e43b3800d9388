package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Item is a catalog entry. It is immutable once constructed and identified by its SKU only.
type Item struct {
	sku         string
	name        string
	description string
	price       Money

	createdAt time.Time
}

type ItemOption func(*Item)

// WithSKU uses the given SKU instead of generating one.
func WithSKU(sku string) ItemOption {
	return func(i *Item) {
		i.sku = sku
	}
}

func NewItem(name, description string, price Money, opts ...ItemOption) (Item, error) {
	item := Item{
		name:        name,
		description: description,
		price:       price,
	}

	for _, opt := range opts {
		opt(&item)
	}

	if item.sku == "" {
		item.sku = uuid.NewString()
	}

	if err := item.validate(); err != nil {
		return Item{}, err
	}

	return item, nil
}

// RestoreItem rebuilds an item read back from storage.
func RestoreItem(sku, name, description string, price Money, createdAt time.Time) (Item, error) {
	if sku == "" {
		return Item{}, fmt.Errorf("sku is empty")
	}

	item := Item{
		sku:         sku,
		name:        name,
		description: description,
		price:       price,
		createdAt:   createdAt,
	}

	if err := item.validate(); err != nil {
		return Item{}, err
	}

	return item, nil
}

func (i Item) validate() error {
	if strings.TrimSpace(i.name) == "" {
		return ErrEmptyName
	}

	if i.price.IsNegative() {
		return fmt.Errorf("price[%s]: %w", i.price.Amount, ErrInvalidPrice)
	}

	return nil
}

func (i Item) SKU() string {
	return i.sku
}

func (i Item) Name() string {
	return i.name
}

func (i Item) Description() string {
	return i.description
}

func (i Item) Price() Money {
	return i.price
}

// CreatedAt is zero for items that were never persisted.
func (i Item) CreatedAt() time.Time {
	return i.createdAt
}

// Equal reports whether other is an Item with the same SKU.
// Values of any other type, and items without SKU, are never equal.
func (i Item) Equal(other any) bool {
	if i.sku == "" {
		return false
	}

	switch o := other.(type) {
	case Item:
		return i.sku == o.sku
	case *Item:
		return o != nil && i.sku == o.sku
	default:
		return false
	}
}

func (i Item) String() string {
	return fmt.Sprintf("{name: %s, description: %s, price: %s, sku: %s}", i.name, i.description, i.price, i.sku)
}
