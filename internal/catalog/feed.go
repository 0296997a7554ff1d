package catalog

import (
	"context"
	"sync"

	"github.com/go-faster/errors"
)

// ErrFetchInFlight is returned when LoadMore is called while a previous page
// request is still pending. One fetch per feed at a time.
var ErrFetchInFlight = errors.New("page fetch already in flight")

// Source fetches one catalog page from the upstream platform. after is the
// cursor from the previous page, or empty for the first page.
type Source interface {
	ProductsPage(ctx context.Context, first int, after string) (Page, error)
}

// Feed accumulates cursor-paginated catalog pages for infinite-scroll
// consumption. The first load replaces the accumulated list; later loads
// append. A failed fetch leaves the accumulated state untouched so the same
// cursor can be retried.
type Feed struct {
	source   Source
	pageSize int
	price    PricePolicy

	mu       sync.Mutex
	loading  bool
	started  bool
	products []Product
	cursor   string
	hasMore  bool
}

// FeedOption configures a Feed.
type FeedOption func(*Feed)

// WithPricePolicy overrides the display-price policy, FirstVariantPrice by
// default.
func WithPricePolicy(p PricePolicy) FeedOption {
	return func(f *Feed) { f.price = p }
}

// NewFeed creates a Feed over the given source with a fixed page size.
func NewFeed(source Source, pageSize int, opts ...FeedOption) *Feed {
	f := &Feed{
		source:   source,
		pageSize: pageSize,
		price:    FirstVariantPrice,
		hasMore:  true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// LoadMore fetches the next page and folds it into the feed. It returns
// ErrFetchInFlight when a fetch is already pending, and is a no-op once the
// upstream reports no further pages.
func (f *Feed) LoadMore(ctx context.Context) error {
	f.mu.Lock()
	if f.loading {
		f.mu.Unlock()
		return ErrFetchInFlight
	}
	if f.started && !f.hasMore {
		f.mu.Unlock()
		return nil
	}
	after := ""
	if f.started {
		after = f.cursor
	}
	f.loading = true
	f.mu.Unlock()

	page, err := f.source.ProductsPage(ctx, f.pageSize, after)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = false
	if err != nil {
		return errors.Wrap(err, "fetch catalog page")
	}

	for i := range page.Products {
		page.Products[i].Price = f.price(page.Products[i])
	}
	if after == "" {
		f.products = page.Products
	} else {
		f.products = append(f.products, page.Products...)
	}
	f.started = true
	f.cursor = page.EndCursor
	f.hasMore = page.HasNextPage
	return nil
}

// Products returns a copy of the accumulated product list.
func (f *Feed) Products() []Product {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Product, len(f.products))
	copy(out, f.products)
	return out
}

// HasMore reports whether the upstream has further pages. It is true before
// the first load.
func (f *Feed) HasMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasMore
}

// Reset discards the accumulated list and cursor so the next LoadMore starts
// from the first page again.
func (f *Feed) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products = nil
	f.cursor = ""
	f.started = false
	f.hasMore = true
}
