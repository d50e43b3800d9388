package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/shopcart/internal/config"
	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/nikolayk812/shopcart/internal/logger"
	"github.com/nikolayk812/shopcart/internal/port"
	"github.com/nikolayk812/shopcart/internal/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config.Load: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger.New: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("shopcart failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("pgxpool.New: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("pool.Ping: %w", err)
	}

	items := repository.NewItem(pool)

	headset, err := demoItem(ctx, items, "demo-double-bass-headset", "Double Bass Headset",
		"This is a double bass headset brought to you by Vic technologies.", cfg, 100)
	if err != nil {
		return fmt.Errorf("demoItem: %w", err)
	}

	demo, err := demoItem(ctx, items, "demo-item-2", "Demo Item 2", "This is a demo item 2", cfg, 200)
	if err != nil {
		return fmt.Errorf("demoItem: %w", err)
	}

	log.Info("item equality",
		zap.Bool("headset_equals_demo", sameItem(log, headset, demo)),
		zap.Bool("headset_equals_string", sameItem(log, headset, "headset")),
	)

	count, err := items.Count(ctx)
	if err != nil {
		return fmt.Errorf("items.Count: %w", err)
	}

	catalog, err := items.List(ctx, cfg.ListLimit)
	if err != nil {
		return fmt.Errorf("items.List: %w", err)
	}
	log.Info("catalog loaded", zap.Int64("item_count", count), zap.Int("listed", len(catalog)))

	cart, err := domain.NewShoppingCart(cfg.Owner, domain.WithLogger(log))
	if err != nil {
		return fmt.Errorf("domain.NewShoppingCart: %w", err)
	}
	log.Info("cart created", zap.String("owner", cart.Owner()), zap.String("cart_id", cart.ID()))

	steps := []func() (domain.CartResult, error){
		func() (domain.CartResult, error) { return cart.AddItem(headset, 10) },
		func() (domain.CartResult, error) { return cart.ReduceQuantity(headset, 2) },
		func() (domain.CartResult, error) { return cart.AddItem(demo, 5) },
		func() (domain.CartResult, error) { return cart.IncreaseQuantity(demo, 9) },
		func() (domain.CartResult, error) { return cart.RemoveItem(headset), nil },
	}

	for _, step := range steps {
		res, err := step()
		if err != nil {
			return fmt.Errorf("cart step: %w", err)
		}
		logResult(log, res, cart.Size())

		if err := printCart(cart); err != nil {
			return err
		}
	}

	total, err := cart.Total()
	if err != nil {
		return fmt.Errorf("cart.Total: %w", err)
	}
	log.Info("cart total", zap.Stringer("total", total), zap.Int("size", cart.Size()))

	cart.Reset()
	log.Info("cart reset", zap.Int("size", cart.Size()))

	return printCart(cart)
}

// demoItem returns the catalog item stored under sku, creating it on first run.
func demoItem(ctx context.Context, items port.ItemRepository, sku, name, description string, cfg config.Config, price int64) (domain.Item, error) {
	stored, err := items.Get(ctx, sku)
	if err == nil {
		return stored, nil
	}
	if !errors.Is(err, port.ErrNotFound) {
		return domain.Item{}, fmt.Errorf("items.Get: %w", err)
	}

	item, err := domain.NewItem(name, description,
		domain.NewMoney(decimal.NewFromInt(price), cfg.CurrencyUnit()), domain.WithSKU(sku))
	if err != nil {
		return domain.Item{}, fmt.Errorf("domain.NewItem: %w", err)
	}

	created, err := items.Create(ctx, item)
	if errors.Is(err, port.ErrAlreadyExists) {
		// another run created it between Get and Create
		return items.Get(ctx, sku)
	}
	if err != nil {
		return domain.Item{}, fmt.Errorf("items.Create: %w", err)
	}

	return created, nil
}

// sameItem compares by SKU and warns when other is not an item at all.
func sameItem(log *zap.Logger, item domain.Item, other any) bool {
	switch other.(type) {
	case domain.Item, *domain.Item:
	default:
		log.Warn("compared item with a non-item value",
			zap.String("sku", item.SKU()),
			zap.String("other_type", fmt.Sprintf("%T", other)),
		)
	}

	return item.Equal(other)
}

func logResult(log *zap.Logger, res domain.CartResult, size int) {
	fields := []zap.Field{
		zap.String("status", string(res.Status)),
		zap.String("sku", res.Item.SKU()),
		zap.String("name", res.Item.Name()),
		zap.Int("cart_size", size),
	}
	if res.Line != nil {
		fields = append(fields, zap.Int("quantity", res.Line.Quantity))
	}
	if !res.Found {
		fields = append(fields, zap.Bool("found", false))
	}

	log.Info("cart updated", fields...)
}

func printCart(cart *domain.ShoppingCart) error {
	raw, err := cart.ShowCart()
	if err != nil {
		return fmt.Errorf("cart.ShowCart: %w", err)
	}

	fmt.Println(string(raw))
	return nil
}
