package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/shopcart/internal/db"
)

// withTx runs fn in a new transaction on pool. A nil pool means the repository
// was built on a caller-owned transaction, so fn runs on q directly and the
// caller decides about commit and rollback.
func withTx[T any](ctx context.Context, pool *pgxpool.Pool, q *db.Queries, fn func(q *db.Queries) (T, error)) (_ T, txErr error) {
	var zero T

	if pool == nil {
		return fn(q)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return zero, fmt.Errorf("pool.Begin: %w", err)
	}

	defer func() {
		if txErr != nil {
			rollbackErr := tx.Rollback(ctx)
			if rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				txErr = errors.Join(txErr, fmt.Errorf("tx.Rollback: %w", rollbackErr))
			}
		}
	}()

	result, err := fn(q.WithTx(tx))
	if err != nil {
		return zero, err
	}

	if err := tx.Commit(ctx); err != nil {
		return zero, fmt.Errorf("tx.Commit: %w", err)
	}

	return result, nil
}

// withCountedTx runs fn like withTx and, in the same transaction, moves the
// maintained item count by delta once fn succeeds. A failing fn leaves the
// count untouched.
func withCountedTx[T any](ctx context.Context, pool *pgxpool.Pool, q *db.Queries, delta int64, fn func(q *db.Queries) (T, error)) (T, error) {
	return withTx(ctx, pool, q, func(q *db.Queries) (T, error) {
		var zero T

		result, err := fn(q)
		if err != nil {
			return zero, err
		}

		if err := q.AdjustItemCount(ctx, delta); err != nil {
			return zero, fmt.Errorf("q.AdjustItemCount: %w", err)
		}

		return result, nil
	})
}
