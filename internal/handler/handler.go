// Package handler exposes the storefront HTTP API. Handlers stay thin:
// decode, delegate, encode. All catalog state lives upstream; the only
// local state is the page cache.
package handler

import (
	"context"
	"net/http"

	"github.com/reelmart/storefront/internal/catalog"
	"github.com/reelmart/storefront/internal/checkout"
	"github.com/reelmart/storefront/internal/pagecache"
	"github.com/reelmart/storefront/internal/storefront"
	"github.com/reelmart/storefront/internal/webhook"
)

// Catalog reads products and collections from the upstream platform.
type Catalog interface {
	ProductsPage(ctx context.Context, first int, after string) (catalog.Page, error)
	ProductByHandle(ctx context.Context, handle string) (*catalog.Product, error)
	Collections(ctx context.Context, first int) ([]catalog.Collection, error)
	CollectionProductsPage(ctx context.Context, handle string, first int, after string) (catalog.Page, error)
}

// CheckoutCreator turns cart lines into a hosted checkout URL.
type CheckoutCreator interface {
	Create(ctx context.Context, lines []checkout.Line) (string, error)
}

// CartVerifier reports whether a cart id is known upstream.
type CartVerifier interface {
	LookupCart(ctx context.Context, id string) (bool, error)
}

// ContactSender forwards a contact-form submission upstream.
type ContactSender interface {
	SubmitContact(ctx context.Context, s storefront.ContactSubmission) error
}

// Handler serves the storefront API.
type Handler struct {
	catalog  Catalog
	checkout CheckoutCreator
	carts    CartVerifier
	contact  ContactSender
	hooks    *webhook.Processor
	cache    *pagecache.Cache
	price    catalog.PricePolicy
	shipping catalog.Money
}

// Config wires a Handler. Catalog, Checkout, Contact and Hooks are required;
// Carts is optional and enables cart verification on order creation. A nil
// PricePolicy defaults to the first-variant price.
type Config struct {
	Catalog     Catalog
	Checkout    CheckoutCreator
	Carts       CartVerifier
	Contact     ContactSender
	Hooks       *webhook.Processor
	Cache       *pagecache.Cache
	PricePolicy catalog.PricePolicy
	// Shipping is the flat shipping rate added when verifying a submitted
	// order total.
	Shipping catalog.Money
}

// New creates a Handler.
func New(cfg Config) *Handler {
	price := cfg.PricePolicy
	if price == nil {
		price = catalog.FirstVariantPrice
	}
	return &Handler{
		catalog:  cfg.Catalog,
		checkout: cfg.Checkout,
		carts:    cfg.Carts,
		contact:  cfg.Contact,
		hooks:    cfg.Hooks,
		cache:    cfg.Cache,
		price:    price,
		shipping: cfg.Shipping,
	}
}

// Routes registers every endpoint on a fresh mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/products", h.listProducts)
	mux.HandleFunc("GET /api/products/{handle}", h.getProduct)
	mux.HandleFunc("GET /api/collections", h.listCollections)
	mux.HandleFunc("GET /api/collections/{handle}/products", h.collectionProducts)
	mux.HandleFunc("POST /api/orders", h.createOrder)
	mux.HandleFunc("POST /api/contact", h.submitContact)
	mux.HandleFunc("POST /webhooks/platform", h.receiveWebhook)
	mux.HandleFunc("GET /api/checkout", h.redirectCheckout)
	return mux
}
