package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/reelmart/storefront/internal/catalog"
	"github.com/reelmart/storefront/internal/storefront"
)

const (
	defaultPageSize = 12
	maxPageSize     = 50
)

func pageSize(r *http.Request) int {
	raw := r.URL.Query().Get("first")
	if raw == "" {
		return defaultPageSize
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return defaultPageSize
	}
	return min(n, maxPageSize)
}

// cached serves the rendered body through the page cache when one is
// configured. The key is the full request URI, so webhook invalidation by
// path prefix covers every query-string variant.
func (h *Handler) cached(w http.ResponseWriter, r *http.Request, render func(context.Context) ([]byte, error)) {
	if h.cache == nil {
		body, err := render(r.Context())
		if err != nil {
			h.renderError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, body)
		return
	}
	body, err := h.cache.GetOrFill(r.Context(), r.URL.RequestURI(), render)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, body)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, storefront.ErrProductNotFound):
		writeError(w, http.StatusNotFound, "product not found")
	case errors.Is(err, storefront.ErrCollectionNotFound):
		writeError(w, http.StatusNotFound, "collection not found")
	default:
		serverError(w, r, err)
	}
}

// listProducts serves one cursor-paginated catalog page, optionally filtered
// by category. The filter runs after the fetch, so a filtered page may hold
// fewer items than requested while hasNextPage still refers to the unfiltered
// catalog.
func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	first := pageSize(r)
	after := r.URL.Query().Get("after")
	category := r.URL.Query().Get("category")

	h.cached(w, r, func(ctx context.Context) ([]byte, error) {
		page, err := h.catalog.ProductsPage(ctx, first, after)
		if err != nil {
			return nil, err
		}
		page.Products = catalog.FilterByCategory(page.Products, category)
		e := &jx.Encoder{}
		encodePage(e, page, catalog.EmbedFeed, h.price)
		return e.Bytes(), nil
	})
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	handle := r.PathValue("handle")

	h.cached(w, r, func(ctx context.Context) ([]byte, error) {
		p, err := h.catalog.ProductByHandle(ctx, handle)
		if err != nil {
			return nil, err
		}
		e := &jx.Encoder{}
		encodeProduct(e, *p, catalog.EmbedViewer, h.price)
		return e.Bytes(), nil
	})
}

func (h *Handler) listCollections(w http.ResponseWriter, r *http.Request) {
	first := pageSize(r)

	h.cached(w, r, func(ctx context.Context) ([]byte, error) {
		cols, err := h.catalog.Collections(ctx, first)
		if err != nil {
			return nil, err
		}
		e := &jx.Encoder{}
		encodeCollections(e, cols, h.price)
		return e.Bytes(), nil
	})
}

func (h *Handler) collectionProducts(w http.ResponseWriter, r *http.Request) {
	handle := r.PathValue("handle")
	first := pageSize(r)
	after := r.URL.Query().Get("after")

	h.cached(w, r, func(ctx context.Context) ([]byte, error) {
		page, err := h.catalog.CollectionProductsPage(ctx, handle, first, after)
		if err != nil {
			return nil, err
		}
		e := &jx.Encoder{}
		encodePage(e, page, catalog.EmbedFeed, h.price)
		return e.Bytes(), nil
	})
}
