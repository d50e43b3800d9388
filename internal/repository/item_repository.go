package repository

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/shopcart/internal/db"
	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/nikolayk812/shopcart/internal/port"
	"golang.org/x/text/currency"
)

const uniqueViolation = "23505"

type itemRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewItem(pool *pgxpool.Pool) port.ItemRepository {
	return &itemRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewItemWithTx(tx pgx.Tx) port.ItemRepository {
	return &itemRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *itemRepository) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	if item.SKU() == "" {
		return domain.Item{}, fmt.Errorf("sku is empty")
	}

	return withCountedTx(ctx, r.pool, r.q, 1, func(q *db.Queries) (domain.Item, error) {
		row, err := q.CreateItem(ctx, db.CreateItemParams{
			Sku:           item.SKU(),
			Name:          item.Name(),
			Description:   item.Description(),
			PriceAmount:   item.Price().Amount,
			PriceCurrency: item.Price().Currency.String(),
		})
		if err != nil {
			if isUniqueViolation(err) {
				return domain.Item{}, fmt.Errorf("sku[%s]: %w", item.SKU(), port.ErrAlreadyExists)
			}
			return domain.Item{}, fmt.Errorf("q.CreateItem: %w", err)
		}

		return mapItemRowToDomain(row)
	})
}

func (r *itemRepository) Get(ctx context.Context, sku string) (domain.Item, error) {
	if sku == "" {
		return domain.Item{}, fmt.Errorf("sku is empty")
	}

	row, err := r.q.GetItem(ctx, sku)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Item{}, fmt.Errorf("sku[%s]: %w", sku, port.ErrNotFound)
		}
		return domain.Item{}, fmt.Errorf("q.GetItem: %w", err)
	}

	return mapItemRowToDomain(row)
}

func (r *itemRepository) List(ctx context.Context, limit int) ([]domain.Item, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit[%d]: %w", limit, port.ErrInvalidLimit)
	}

	rows, err := r.q.ListItems(ctx, int32(min(limit, math.MaxInt32)))
	if err != nil {
		return nil, fmt.Errorf("q.ListItems: %w", err)
	}

	items, err := mapItemRowsToDomain(rows)
	if err != nil {
		return nil, fmt.Errorf("mapItemRowsToDomain: %w", err)
	}

	return items, nil
}

func (r *itemRepository) Update(ctx context.Context, item domain.Item) (domain.Item, error) {
	if item.SKU() == "" {
		return domain.Item{}, fmt.Errorf("sku is empty")
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.Item, error) {
		row, err := q.UpdateItem(ctx, db.UpdateItemParams{
			Sku:           item.SKU(),
			Name:          item.Name(),
			Description:   item.Description(),
			PriceAmount:   item.Price().Amount,
			PriceCurrency: item.Price().Currency.String(),
		})
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.Item{}, fmt.Errorf("sku[%s]: %w", item.SKU(), port.ErrNotFound)
			}
			return domain.Item{}, fmt.Errorf("q.UpdateItem: %w", err)
		}

		return mapItemRowToDomain(row)
	})
}

func (r *itemRepository) Delete(ctx context.Context, sku string) error {
	if sku == "" {
		return fmt.Errorf("sku is empty")
	}

	// sku is the primary key, so a successful delete removes exactly one row
	_, err := withCountedTx(ctx, r.pool, r.q, -1, func(q *db.Queries) (struct{}, error) {
		rowsAffected, err := q.DeleteItem(ctx, sku)
		if err != nil {
			return struct{}{}, fmt.Errorf("q.DeleteItem: %w", err)
		}

		if rowsAffected == 0 {
			return struct{}{}, fmt.Errorf("sku[%s]: %w", sku, port.ErrNotFound)
		}

		return struct{}{}, nil
	})

	return err
}

func (r *itemRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.q.GetItemCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("q.GetItemCount: %w", err)
	}

	return count, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func mapItemRowToDomain(row db.Item) (domain.Item, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.Item{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	item, err := domain.RestoreItem(
		row.Sku,
		row.Name,
		row.Description,
		domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
		row.CreatedAt,
	)
	if err != nil {
		return domain.Item{}, fmt.Errorf("domain.RestoreItem: %w", err)
	}

	return item, nil
}

func mapItemRowsToDomain(rows []db.Item) ([]domain.Item, error) {
	items := make([]domain.Item, 0, len(rows))

	for _, row := range rows {
		item, err := mapItemRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapItemRowToDomain: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}
