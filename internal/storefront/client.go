// Package storefront is the client for the upstream commerce platform's
// GraphQL API. It owns the wire shapes and the error taxonomy; everything it
// returns is already normalized into catalog domain types.
package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/reelmart/storefront/internal/catalog"
	"github.com/reelmart/storefront/internal/checkout"
	"github.com/reelmart/storefront/pkg/retry"
)

// accessTokenHeader authenticates every request to the platform.
const accessTokenHeader = "X-Shopify-Storefront-Access-Token"

const defaultTimeout = 10 * time.Second

// Config holds the explicit client configuration. Credentials are threaded
// through constructors; nothing reads ambient process state.
type Config struct {
	// Endpoint is the GraphQL endpoint URL.
	Endpoint string
	// AccessToken is the static storefront access token.
	AccessToken string
	// Timeout bounds each HTTP request. Defaults to 10s.
	Timeout time.Duration
	// MaxAttempts enables bounded retry with jitter for transport failures
	// when greater than one. GraphQL and validation errors are never
	// retried. Defaults to a single attempt.
	MaxAttempts int
	// Transport overrides the HTTP round tripper, used by tests.
	Transport http.RoundTripper
}

// Client talks to the upstream platform.
type Client struct {
	endpoint string
	token    string
	http     *http.Client
	attempts int
}

// NewClient validates the configuration and builds a Client. The transport
// is instrumented with otelhttp.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" || cfg.AccessToken == "" {
		return nil, ErrNotConfigured
	}
	rt := cfg.Transport
	if rt == nil {
		rt = http.DefaultTransport
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	return &Client{
		endpoint: cfg.Endpoint,
		token:    cfg.AccessToken,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(rt),
		},
		attempts: attempts,
	}, nil
}

// do posts one GraphQL document and decodes the data envelope into out.
func (c *Client) do(ctx context.Context, query string, vars map[string]any, out any) error {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: vars})
	if err != nil {
		return errors.Wrap(err, "encode request")
	}

	return retry.Do(ctx, retry.Config{
		MaxAttempts: c.attempts,
		ShouldRetry: func(err error) bool {
			var re *RequestError
			return errors.As(err, &re)
		},
	}, func() error {
		return c.doOnce(ctx, body, out)
	})
}

func (c *Client) doOnce(ctx context.Context, body []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(accessTokenHeader, c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &RequestError{Err: errors.Errorf("upstream status %d", resp.StatusCode)}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return &DecodeError{Field: "response body", Err: err}
	}
	if len(env.Errors) > 0 {
		return env.Errors
	}
	if len(env.Data) == 0 {
		return &DecodeError{Field: "data"}
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &DecodeError{Field: "data", Err: err}
	}
	return nil
}

// Ping performs a minimal shop lookup, used by the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	var out struct {
		Shop struct {
			Name string `json:"name"`
		} `json:"shop"`
	}
	return c.do(ctx, queryShop, nil, &out)
}

// ProductsPage fetches one cursor-paginated page of the full catalog. It
// implements catalog.Source.
func (c *Client) ProductsPage(ctx context.Context, first int, after string) (catalog.Page, error) {
	vars := map[string]any{"first": first}
	if after != "" {
		vars["after"] = after
	}
	var out struct {
		Products connection[productNode] `json:"products"`
	}
	if err := c.do(ctx, queryProductsPage, vars, &out); err != nil {
		return catalog.Page{}, err
	}
	return toPage(out.Products)
}

// ProductByHandle fetches a single product, or ErrProductNotFound.
func (c *Client) ProductByHandle(ctx context.Context, handle string) (*catalog.Product, error) {
	var out struct {
		Product *productNode `json:"product"`
	}
	if err := c.do(ctx, queryProductByHandle, map[string]any{"handle": handle}, &out); err != nil {
		return nil, err
	}
	if out.Product == nil {
		return nil, ErrProductNotFound
	}
	p, err := toProduct(*out.Product)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Collections lists collections, each carrying a preview of its products.
func (c *Client) Collections(ctx context.Context, first int) ([]catalog.Collection, error) {
	var out struct {
		Collections connection[collectionNode] `json:"collections"`
	}
	vars := map[string]any{"first": first, "productsFirst": 6}
	if err := c.do(ctx, queryCollections, vars, &out); err != nil {
		return nil, err
	}
	collections := make([]catalog.Collection, 0, len(out.Collections.Edges))
	for _, e := range out.Collections.Edges {
		col, err := toCollection(e.Node)
		if err != nil {
			return nil, err
		}
		collections = append(collections, col)
	}
	return collections, nil
}

// CollectionProductsPage fetches one page of a collection's products, or
// ErrCollectionNotFound.
func (c *Client) CollectionProductsPage(ctx context.Context, handle string, first int, after string) (catalog.Page, error) {
	vars := map[string]any{"handle": handle, "first": first}
	if after != "" {
		vars["after"] = after
	}
	var out struct {
		Collection *collectionNode `json:"collection"`
	}
	if err := c.do(ctx, queryCollectionProducts, vars, &out); err != nil {
		return catalog.Page{}, err
	}
	if out.Collection == nil {
		return catalog.Page{}, ErrCollectionNotFound
	}
	return toPage(out.Collection.Products)
}

// FirstAvailableVariant resolves a product id to its first variant that is
// available for sale. It returns (nil, nil) when the product has none,
// implementing checkout.VariantResolver.
func (c *Client) FirstAvailableVariant(ctx context.Context, productID string) (*catalog.Variant, error) {
	var out struct {
		Node *struct {
			Title    string                  `json:"title"`
			Variants connection[variantNode] `json:"variants"`
		} `json:"node"`
	}
	if err := c.do(ctx, queryProductVariants, map[string]any{"id": productID}, &out); err != nil {
		return nil, err
	}
	if out.Node == nil {
		return nil, ErrProductNotFound
	}
	for _, e := range out.Node.Variants.Edges {
		if !e.Node.AvailableForSale {
			continue
		}
		v, err := toVariant(e.Node)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
	return nil, nil
}

// CreateCheckout submits resolved variant lines to the upstream
// checkout-creation mutation and returns the hosted checkout URL. Upstream
// validation failures come back as UserErrors, verbatim. Implements
// checkout.Creator.
func (c *Client) CreateCheckout(ctx context.Context, lines []checkout.VariantLine) (string, error) {
	items := make([]map[string]any, len(lines))
	for i, l := range lines {
		items[i] = map[string]any{"variantId": l.VariantID, "quantity": l.Quantity}
	}
	var out struct {
		CheckoutCreate struct {
			Checkout *struct {
				ID     string `json:"id"`
				WebURL string `json:"webUrl"`
			} `json:"checkout"`
			CheckoutUserErrors UserErrors `json:"checkoutUserErrors"`
		} `json:"checkoutCreate"`
	}
	vars := map[string]any{"input": map[string]any{"lineItems": items}}
	if err := c.do(ctx, mutationCheckoutCreate, vars, &out); err != nil {
		return "", err
	}
	if len(out.CheckoutCreate.CheckoutUserErrors) > 0 {
		return "", out.CheckoutCreate.CheckoutUserErrors
	}
	if out.CheckoutCreate.Checkout == nil || out.CheckoutCreate.Checkout.WebURL == "" {
		return "", &DecodeError{Field: "checkoutCreate.checkout.webUrl"}
	}
	return out.CheckoutCreate.Checkout.WebURL, nil
}

// LookupCart reports whether a cart id is known to the upstream platform.
func (c *Client) LookupCart(ctx context.Context, id string) (bool, error) {
	var out struct {
		Cart *struct {
			ID string `json:"id"`
		} `json:"cart"`
	}
	if err := c.do(ctx, queryCart, map[string]any{"id": id}, &out); err != nil {
		return false, err
	}
	return out.Cart != nil, nil
}

// ContactSubmission is a contact-form payload forwarded upstream. Nothing is
// persisted locally.
type ContactSubmission struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// SubmitContact forwards a contact-form submission as an upstream mutation.
func (c *Client) SubmitContact(ctx context.Context, s ContactSubmission) error {
	var out struct {
		ContactSubmit struct {
			UserErrors UserErrors `json:"userErrors"`
		} `json:"contactSubmit"`
	}
	vars := map[string]any{"input": map[string]any{
		"name":    s.Name,
		"email":   s.Email,
		"subject": s.Subject,
		"message": s.Message,
	}}
	if err := c.do(ctx, mutationContactSubmit, vars, &out); err != nil {
		return err
	}
	if len(out.ContactSubmit.UserErrors) > 0 {
		return out.ContactSubmit.UserErrors
	}
	return nil
}

func toCollection(n collectionNode) (catalog.Collection, error) {
	page, err := toPage(n.Products)
	if err != nil {
		return catalog.Collection{}, err
	}
	return catalog.Collection{
		ID:          n.ID,
		Handle:      n.Handle,
		Title:       n.Title,
		Description: n.Description,
		Products:    page.Products,
	}, nil
}
