package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CartStatus string

const (
	CartItemAdded   CartStatus = "CartItemAdded"
	CartItemUpdated CartStatus = "CartItemUpdated"
	CartItemRemoved CartStatus = "CartItemRemoved"
)

// CartLine is a single SKU entry of a cart. Quantity is at least 1 while the line exists.
type CartLine struct {
	Item     Item
	Quantity int

	AddedAt   time.Time
	UpdatedAt time.Time
}

func (l CartLine) Subtotal() Money {
	return l.Item.Price().Times(l.Quantity)
}

// CartResult describes the outcome of a cart mutation.
// Line is a copy of the affected line and is nil for removals.
// Found is false only when a removal targeted a SKU that had no line.
type CartResult struct {
	Status CartStatus
	Item   Item
	Line   *CartLine
	Found  bool
}

// ShoppingCart is an in-memory, single-owner aggregate of lines keyed by SKU.
// It is not safe for concurrent use.
type ShoppingCart struct {
	id        string
	owner     string
	createdAt time.Time
	lines     map[string]*CartLine

	now func() time.Time
	log *zap.Logger
}

type CartOption func(*ShoppingCart)

func WithClock(now func() time.Time) CartOption {
	return func(c *ShoppingCart) {
		c.now = now
	}
}

func WithLogger(log *zap.Logger) CartOption {
	return func(c *ShoppingCart) {
		c.log = log
	}
}

func WithCartID(id string) CartOption {
	return func(c *ShoppingCart) {
		c.id = id
	}
}

func NewShoppingCart(owner string, opts ...CartOption) (*ShoppingCart, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, ErrEmptyOwner
	}

	c := &ShoppingCart{
		owner: owner,
		lines: make(map[string]*CartLine),
		now:   time.Now,
		log:   zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.id == "" {
		c.id = uuid.NewString()
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	c.createdAt = c.now()

	c.log = c.log.With(zap.String("cart_id", c.id))
	c.log.Debug("cart created", zap.String("owner", c.owner))

	return c, nil
}

func (c *ShoppingCart) ID() string {
	return c.id
}

func (c *ShoppingCart) Owner() string {
	return c.owner
}

func (c *ShoppingCart) CreatedAt() time.Time {
	return c.createdAt
}

func (c *ShoppingCart) Size() int {
	return len(c.lines)
}

// lookup is the single membership test all mutations branch on.
func (c *ShoppingCart) lookup(item Item) (*CartLine, bool) {
	line, ok := c.lines[item.SKU()]
	return line, ok
}

func (c *ShoppingCart) Contains(item Item) bool {
	_, ok := c.lookup(item)
	return ok
}

// Line returns a copy of the line stored for sku.
func (c *ShoppingCart) Line(sku string) (CartLine, bool) {
	line, ok := c.lines[sku]
	if !ok {
		return CartLine{}, false
	}
	return *line, true
}

// AddItem creates a line for the item, or merges quantity into the existing line for its SKU.
func (c *ShoppingCart) AddItem(item Item, quantity int) (CartResult, error) {
	if err := checkArgs(item, quantity); err != nil {
		return CartResult{}, err
	}

	if _, ok := c.lookup(item); ok {
		c.log.Debug("item already in cart", zap.String("sku", item.SKU()))
		return c.IncreaseQuantity(item, quantity)
	}

	now := c.now()
	line := &CartLine{
		Item:      item,
		Quantity:  quantity,
		AddedAt:   now,
		UpdatedAt: now,
	}
	c.lines[item.SKU()] = line

	c.log.Debug("item added", zap.String("sku", item.SKU()), zap.Int("quantity", quantity))

	return c.result(CartItemAdded, item, line), nil
}

// IncreaseQuantity fails with *ItemNotFoundError when the SKU has no line.
func (c *ShoppingCart) IncreaseQuantity(item Item, quantity int) (CartResult, error) {
	if err := checkArgs(item, quantity); err != nil {
		return CartResult{}, err
	}

	line, ok := c.lookup(item)
	if !ok {
		return CartResult{}, &ItemNotFoundError{SKU: item.SKU(), Name: item.Name()}
	}

	if quantity > math.MaxInt-line.Quantity {
		return CartResult{}, fmt.Errorf("sku[%s] quantity %d + %d: %w", item.SKU(), line.Quantity, quantity, ErrQuantityOverflow)
	}

	line.Quantity += quantity
	line.UpdatedAt = c.now()

	c.log.Debug("item quantity increased", zap.String("sku", item.SKU()), zap.Int("quantity", line.Quantity))

	return c.result(CartItemUpdated, item, line), nil
}

// ReduceQuantity removes the line when quantity reaches or passes zero.
// It fails with *ItemNotFoundError when the SKU has no line.
func (c *ShoppingCart) ReduceQuantity(item Item, quantity int) (CartResult, error) {
	if err := checkArgs(item, quantity); err != nil {
		return CartResult{}, err
	}

	line, ok := c.lookup(item)
	if !ok {
		return CartResult{}, &ItemNotFoundError{SKU: item.SKU(), Name: item.Name()}
	}

	if line.Quantity <= quantity {
		return c.RemoveItem(item), nil
	}

	line.Quantity -= quantity
	line.UpdatedAt = c.now()

	c.log.Debug("item quantity reduced", zap.String("sku", item.SKU()), zap.Int("quantity", line.Quantity))

	return c.result(CartItemUpdated, item, line), nil
}

// checkArgs rejects items that never went through NewItem and non-positive quantities.
func checkArgs(item Item, quantity int) error {
	if item.SKU() == "" {
		return ErrEmptySKU
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// RemoveItem never fails: removing an absent SKU reports Found=false.
// An item without SKU never has a line, so it is always absent.
// The result echoes the requested item rather than the stored one.
func (c *ShoppingCart) RemoveItem(item Item) CartResult {
	_, found := c.lookup(item)
	if found {
		delete(c.lines, item.SKU())
		c.log.Debug("item removed", zap.String("sku", item.SKU()))
	}

	return CartResult{
		Status: CartItemRemoved,
		Item:   item,
		Found:  found,
	}
}

// Reset drops all lines, keeping the cart identity.
func (c *ShoppingCart) Reset() {
	clear(c.lines)
	c.log.Debug("cart reset")
}

// Total sums line subtotals. An empty cart totals to zero with no currency.
func (c *ShoppingCart) Total() (Money, error) {
	if len(c.lines) == 0 {
		return Money{Amount: decimal.Zero}, nil
	}

	var (
		total Money
		first = true
	)

	for _, line := range c.lines {
		if first {
			total = line.Subtotal()
			first = false
			continue
		}

		var err error
		total, err = total.Add(line.Subtotal())
		if err != nil {
			return Money{}, err
		}
	}

	return total, nil
}

func (c *ShoppingCart) result(status CartStatus, item Item, line *CartLine) CartResult {
	cp := *line
	return CartResult{
		Status: status,
		Item:   item,
		Line:   &cp,
		Found:  true,
	}
}

type CartSnapshot struct {
	CartID    string                  `json:"cart_id"`
	Owner     string                  `json:"owner"`
	CreatedAt time.Time               `json:"created_at"`
	Lines     map[string]LineSnapshot `json:"lines"`
}

type LineSnapshot struct {
	Item      ItemSnapshot `json:"item"`
	Quantity  int          `json:"quantity"`
	AddedAt   time.Time    `json:"added_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type ItemSnapshot struct {
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
}

// Snapshot is a point-in-time copy of the cart, detached from later mutations.
func (c *ShoppingCart) Snapshot() CartSnapshot {
	lines := make(map[string]LineSnapshot, len(c.lines))
	for sku, line := range c.lines {
		lines[sku] = LineSnapshot{
			Item:      snapshotItem(line.Item),
			Quantity:  line.Quantity,
			AddedAt:   line.AddedAt,
			UpdatedAt: line.UpdatedAt,
		}
	}

	return CartSnapshot{
		CartID:    c.id,
		Owner:     c.owner,
		CreatedAt: c.createdAt,
		Lines:     lines,
	}
}

// ShowCart renders the snapshot as indented JSON.
func (c *ShoppingCart) ShowCart() ([]byte, error) {
	return json.MarshalIndent(c.Snapshot(), "", "  ")
}

func snapshotItem(item Item) ItemSnapshot {
	return ItemSnapshot{
		SKU:         item.SKU(),
		Name:        item.Name(),
		Description: item.Description(),
		Price:       item.Price().Amount,
		Currency:    item.Price().Currency.String(),
	}
}
