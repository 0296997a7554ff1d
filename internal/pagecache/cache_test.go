package pagecache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrFill_CachesValue(t *testing.T) {
	c := New(time.Minute)
	fills := 0
	fill := func(context.Context) ([]byte, error) {
		fills++
		return []byte("page"), nil
	}

	for range 3 {
		v, err := c.GetOrFill(context.Background(), "/api/products?first=12", fill)
		require.NoError(t, err)
		assert.Equal(t, []byte("page"), v)
	}
	assert.Equal(t, 1, fills)
}

func TestGetOrFill_ErrorNotCached(t *testing.T) {
	c := New(time.Minute)
	calls := 0
	_, err := c.GetOrFill(context.Background(), "k", func(context.Context) ([]byte, error) {
		calls++
		return nil, errors.New("upstream down")
	})
	require.Error(t, err)

	v, err := c.GetOrFill(context.Background(), "k", func(context.Context) ([]byte, error) {
		calls++
		return []byte("ok"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("ok"), v)
	assert.Equal(t, 2, calls)
}

func TestGetOrFill_Expiry(t *testing.T) {
	c := New(time.Minute)
	now := time.Now()
	c.now = func() time.Time { return now }

	_, err := c.GetOrFill(context.Background(), "k", func(context.Context) ([]byte, error) {
		return []byte("v1"), nil
	})
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	v, err := c.GetOrFill(context.Background(), "k", func(context.Context) ([]byte, error) {
		return []byte("v2"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), v)
}

func TestInvalidatePrefix(t *testing.T) {
	c := New(time.Minute)
	seed := func(key string) {
		_, err := c.GetOrFill(context.Background(), key, func(context.Context) ([]byte, error) {
			return []byte(key), nil
		})
		require.NoError(t, err)
	}
	seed("/api/products?first=12")
	seed("/api/products/silk-scarf")
	seed("/api/collections")

	c.InvalidatePrefix("/api/products")
	assert.Equal(t, 1, c.Len())

	v, err := c.GetOrFill(context.Background(), "/api/collections", func(context.Context) ([]byte, error) {
		t.Fatal("collections entry should still be cached")
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("/api/collections"), v)
}

func TestGetOrFill_CollapsesConcurrentFills(t *testing.T) {
	c := New(time.Minute)
	var fills atomic.Int32
	release := make(chan struct{})

	fill := func(context.Context) ([]byte, error) {
		fills.Add(1)
		<-release
		return []byte("page"), nil
	}

	var wg sync.WaitGroup
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := c.GetOrFill(context.Background(), "k", fill)
			assert.NoError(t, err)
			assert.Equal(t, []byte("page"), v)
		}()
	}

	// Let the goroutines pile up on the same key, then release the fill.
	time.Sleep(10 * time.Millisecond)
	close(release)
	wg.Wait()
	assert.Equal(t, int32(1), fills.Load())
}
