package catalog

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource serves a scripted page per cursor and records calls.
type stubSource struct {
	mu    sync.Mutex
	pages map[string]Page
	errs  map[string]error
	calls []string
	block chan struct{}
}

func (s *stubSource) ProductsPage(_ context.Context, _ int, after string) (Page, error) {
	s.mu.Lock()
	s.calls = append(s.calls, after)
	s.mu.Unlock()
	if s.block != nil {
		<-s.block
	}
	if err := s.errs[after]; err != nil {
		return Page{}, err
	}
	return s.pages[after], nil
}

func pricedProduct(id, amount string) Product {
	return Product{
		ID:       id,
		Title:    id,
		Variants: []Variant{{ID: id + "-v1", Price: MustMoney(amount, "PKR"), Available: true}},
	}
}

func TestFeed_TwoPageAccumulation(t *testing.T) {
	src := &stubSource{pages: map[string]Page{
		"": {
			Products:    []Product{pricedProduct("p1", "10.00"), pricedProduct("p2", "20.00")},
			EndCursor:   "C",
			HasNextPage: true,
		},
		"C": {
			Products:    []Product{pricedProduct("p3", "30.00")},
			HasNextPage: false,
		},
	}}
	feed := NewFeed(src, 2)

	require.NoError(t, feed.LoadMore(context.Background()))
	assert.Len(t, feed.Products(), 2)
	assert.True(t, feed.HasMore())

	require.NoError(t, feed.LoadMore(context.Background()))
	products := feed.Products()
	require.Len(t, products, 3)
	assert.Equal(t, "p3", products[2].ID)
	assert.False(t, feed.HasMore())

	assert.Equal(t, []string{"", "C"}, src.calls)
}

func TestFeed_FirstLoadReplaces(t *testing.T) {
	src := &stubSource{pages: map[string]Page{
		"": {Products: []Product{pricedProduct("p1", "10.00")}, HasNextPage: false},
	}}
	feed := NewFeed(src, 2)

	require.NoError(t, feed.LoadMore(context.Background()))
	feed.Reset()
	require.NoError(t, feed.LoadMore(context.Background()))
	assert.Len(t, feed.Products(), 1)
}

func TestFeed_ExhaustedIsNoOp(t *testing.T) {
	src := &stubSource{pages: map[string]Page{
		"": {Products: []Product{pricedProduct("p1", "10.00")}, HasNextPage: false},
	}}
	feed := NewFeed(src, 2)

	require.NoError(t, feed.LoadMore(context.Background()))
	require.NoError(t, feed.LoadMore(context.Background()))
	assert.Len(t, src.calls, 1)
}

func TestFeed_ErrorKeepsAccumulatedState(t *testing.T) {
	src := &stubSource{
		pages: map[string]Page{
			"": {Products: []Product{pricedProduct("p1", "10.00")}, EndCursor: "C", HasNextPage: true},
		},
		errs: map[string]error{"C": errors.New("upstream down")},
	}
	feed := NewFeed(src, 2)

	require.NoError(t, feed.LoadMore(context.Background()))
	require.Error(t, feed.LoadMore(context.Background()))

	// Accumulated list and cursor survive; the same cursor is retried.
	assert.Len(t, feed.Products(), 1)
	assert.True(t, feed.HasMore())

	src.errs = nil
	src.pages["C"] = Page{Products: []Product{pricedProduct("p2", "20.00")}}
	require.NoError(t, feed.LoadMore(context.Background()))
	assert.Len(t, feed.Products(), 2)
	assert.Equal(t, []string{"", "C", "C"}, src.calls)
}

func TestFeed_SingleFetchInFlight(t *testing.T) {
	src := &stubSource{
		pages: map[string]Page{"": {}},
		block: make(chan struct{}),
	}
	feed := NewFeed(src, 2)

	done := make(chan error, 1)
	go func() { done <- feed.LoadMore(context.Background()) }()

	// Wait until the first fetch is pending, then race a second one.
	require.Eventually(t, func() bool {
		src.mu.Lock()
		defer src.mu.Unlock()
		return len(src.calls) == 1
	}, time.Second, time.Millisecond)

	assert.ErrorIs(t, feed.LoadMore(context.Background()), ErrFetchInFlight)

	close(src.block)
	require.NoError(t, <-done)
}

func TestFeed_DisplayPricePolicy(t *testing.T) {
	newSource := func() *stubSource {
		p := pricedProduct("p1", "99.00")
		p.Price = MustMoney("10.00", "PKR") // range minimum, first variant wins by default
		return &stubSource{pages: map[string]Page{"": {Products: []Product{p}}}}
	}

	feed := NewFeed(newSource(), 1)
	require.NoError(t, feed.LoadMore(context.Background()))
	assert.True(t, feed.Products()[0].Price.Equal(MustMoney("99.00", "PKR")))

	rangeMin := func(p Product) Money { return p.Price }
	custom := NewFeed(newSource(), 1, WithPricePolicy(rangeMin))
	require.NoError(t, custom.LoadMore(context.Background()))
	assert.True(t, custom.Products()[0].Price.Equal(MustMoney("10.00", "PKR")))
}
