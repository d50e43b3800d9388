package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPrice     = errors.New("price must not be negative")
	ErrEmptyName        = errors.New("name is empty")
	ErrEmptyOwner       = errors.New("owner is empty")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrQuantityOverflow = errors.New("quantity overflows")
	ErrEmptySKU         = errors.New("sku is empty")
	ErrItemNotFound     = errors.New("item not found in cart")
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

// ItemNotFoundError is returned by the strict quantity operations of
// ShoppingCart when the SKU has no line. It matches ErrItemNotFound.
type ItemNotFoundError struct {
	SKU  string
	Name string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("item[%s] %q not in cart", e.SKU, e.Name)
}

func (e *ItemNotFoundError) Is(target error) bool {
	return target == ErrItemNotFound
}
