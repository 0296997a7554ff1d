// Package cart holds the in-memory shopping cart model. A cart lives inside
// a single browsing session; nothing here is persisted or synchronized with
// the upstream platform's cart object.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/reelmart/storefront/internal/catalog"
)

// ErrMixedCurrency is returned when cart lines carry more than one currency
// code. Amounts are never summed across currencies; this is a
// single-storefront, single-currency application.
var ErrMixedCurrency = catalog.ErrCurrencyMismatch

// MergePolicy decides what adding an already-present product does.
type MergePolicy int

const (
	// AppendDuplicates adds a second line for the same product. This is the
	// storefront's observed behavior and the default.
	AppendDuplicates MergePolicy = iota
	// MergeDuplicates sums the quantity into the existing line instead,
	// keeping the original price snapshot.
	MergeDuplicates
)

// Line is one cart entry. Price is the unit price captured at add time; a
// later upstream price change does not affect lines already in the cart.
type Line struct {
	ProductID string
	Title     string
	Quantity  int
	Price     catalog.Money
	Media     *catalog.Media
}

// Cart is an ordered, in-memory collection of lines. It is confined to a
// single session task and is not safe for concurrent use.
type Cart struct {
	policy MergePolicy
	lines  []Line
}

// Option configures a Cart.
type Option func(*Cart)

// WithMergePolicy overrides the duplicate-add policy.
func WithMergePolicy(p MergePolicy) Option {
	return func(c *Cart) { c.policy = p }
}

// New creates an empty cart with AppendDuplicates semantics unless
// overridden.
func New(opts ...Option) *Cart {
	c := &Cart{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add puts a line into the cart. Quantities below one are raised to one.
func (c *Cart) Add(l Line) {
	if l.Quantity < 1 {
		l.Quantity = 1
	}
	if c.policy == MergeDuplicates {
		for i := range c.lines {
			if c.lines[i].ProductID == l.ProductID {
				c.lines[i].Quantity += l.Quantity
				return
			}
		}
	}
	c.lines = append(c.lines, l)
}

// Remove deletes every line for the given product.
func (c *Cart) Remove(productID string) {
	kept := c.lines[:0]
	for _, l := range c.lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	c.lines = kept
}

// SetQuantity updates the quantity of the product's lines. Values below one
// are a no-op: the quantity floor is one, and removal is explicit via Remove.
func (c *Cart) SetQuantity(productID string, qty int) {
	if qty < 1 {
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = qty
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the cart's lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Subtotal sums unit price times quantity over all lines. An empty cart has
// a zero subtotal; lines with differing currencies yield ErrMixedCurrency.
func (c *Cart) Subtotal() (catalog.Money, error) {
	total := catalog.Money{Amount: decimal.Zero}
	for _, l := range c.lines {
		sum, err := total.Add(l.Price.MulInt(l.Quantity))
		if err != nil {
			return catalog.Money{}, err
		}
		total = sum
	}
	return total, nil
}

// Total is the subtotal plus a flat shipping charge. Tax is delegated to the
// upstream checkout and never computed here.
func (c *Cart) Total(shipping catalog.Money) (catalog.Money, error) {
	sub, err := c.Subtotal()
	if err != nil {
		return catalog.Money{}, err
	}
	return sub.Add(shipping)
}
