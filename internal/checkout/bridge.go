// Package checkout brokers hosted-checkout creation against the upstream
// platform. This application never collects payment details itself; it only
// resolves purchasable variants and hands the browser a checkout URL.
package checkout

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"

	"github.com/reelmart/storefront/internal/catalog"
)

// ErrNoLines is returned when a checkout is requested for an empty cart.
var ErrNoLines = errors.New("checkout requires at least one line")

// NoVariantError indicates a cart line whose product has no purchasable
// variant. It aborts the whole checkout; partial checkouts are never created.
type NoVariantError struct {
	ProductID    string
	ProductTitle string
}

func (e *NoVariantError) Error() string {
	return fmt.Sprintf("no purchasable variant for product %q", e.ProductTitle)
}

// InvalidQuantityError indicates a line with a non-positive quantity.
type InvalidQuantityError struct {
	ProductID string
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("quantity must be greater than 0 for product %s", e.ProductID)
}

// Line is one cart line submitted for checkout.
type Line struct {
	ProductID string
	Title     string
	Quantity  int
}

// VariantLine is a resolved (variant, quantity) pair for the upstream
// checkout-creation call.
type VariantLine struct {
	VariantID string
	Quantity  int
}

// VariantResolver looks up the first available variant of a product. It
// returns (nil, nil) when the product exists but has no purchasable variant.
type VariantResolver interface {
	FirstAvailableVariant(ctx context.Context, productID string) (*catalog.Variant, error)
}

// Creator submits resolved lines to the upstream checkout-creation call and
// returns the hosted checkout URL.
type Creator interface {
	CreateCheckout(ctx context.Context, lines []VariantLine) (string, error)
}

// Bridge resolves cart lines to variants and creates hosted checkouts.
type Bridge struct {
	variants VariantResolver
	creator  Creator
}

// NewBridge creates a Bridge over the given resolver and creator. In
// production both are the storefront client.
func NewBridge(variants VariantResolver, creator Creator) *Bridge {
	return &Bridge{variants: variants, creator: creator}
}

// Create resolves every line to its first available variant and requests a
// hosted checkout URL. Any unresolvable line aborts the whole request with an
// error naming the offending product. Calling twice with the same lines
// creates two upstream checkout sessions; no deduplication key is used.
func (b *Bridge) Create(ctx context.Context, lines []Line) (string, error) {
	if len(lines) == 0 {
		return "", ErrNoLines
	}

	resolved := make([]VariantLine, 0, len(lines))
	for _, l := range lines {
		if l.Quantity <= 0 {
			return "", &InvalidQuantityError{ProductID: l.ProductID}
		}
		v, err := b.variants.FirstAvailableVariant(ctx, l.ProductID)
		if err != nil {
			return "", errors.Wrapf(err, "resolve variant for product %s", l.ProductID)
		}
		if v == nil {
			return "", &NoVariantError{ProductID: l.ProductID, ProductTitle: l.Title}
		}
		resolved = append(resolved, VariantLine{VariantID: v.ID, Quantity: l.Quantity})
	}

	url, err := b.creator.CreateCheckout(ctx, resolved)
	if err != nil {
		return "", errors.Wrap(err, "create checkout")
	}
	return url, nil
}
