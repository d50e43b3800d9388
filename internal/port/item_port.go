package port

import (
	"context"
	"errors"

	"github.com/nikolayk812/shopcart/internal/domain"
)

var (
	ErrNotFound      = errors.New("item not found")
	ErrAlreadyExists = errors.New("item already exists")
	ErrInvalidLimit  = errors.New("limit must be positive")
)

// ItemRepository persists catalog items keyed by SKU.
type ItemRepository interface {
	Create(ctx context.Context, item domain.Item) (domain.Item, error)
	Get(ctx context.Context, sku string) (domain.Item, error)
	List(ctx context.Context, limit int) ([]domain.Item, error)
	Update(ctx context.Context, item domain.Item) (domain.Item, error)
	Delete(ctx context.Context, sku string) error
	Count(ctx context.Context) (int64, error)
}
