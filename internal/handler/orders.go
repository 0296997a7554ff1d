package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/reelmart/storefront/internal/cart"
	"github.com/reelmart/storefront/internal/catalog"
	"github.com/reelmart/storefront/internal/checkout"
	"github.com/reelmart/storefront/internal/storefront"
)

type orderRequest struct {
	CartID string      `json:"cartId"`
	Items  []orderItem `json:"items"`
	// Total is the client-computed grand total including flat shipping.
	// When present alongside item prices it is recomputed server-side and
	// a mismatch rejects the order.
	Total *moneyPayload `json:"total"`
}

type orderItem struct {
	ProductID string        `json:"productId"`
	Title     string        `json:"title"`
	Quantity  int           `json:"quantity"`
	Price     *moneyPayload `json:"price"`
}

type moneyPayload struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// createOrder exchanges cart lines for a hosted checkout URL. The cart id is
// optional; when present it is verified against the upstream platform before
// any checkout is created.
func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "order requires at least one item")
		return
	}
	if msg := h.verifyTotal(req); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	ctx := r.Context()
	if h.carts != nil && req.CartID != "" {
		known, err := h.carts.LookupCart(ctx, req.CartID)
		if err != nil {
			serverError(w, r, errors.Wrap(err, "verify cart"))
			return
		}
		if !known {
			writeError(w, http.StatusBadRequest, "unknown cart")
			return
		}
	}

	lines := make([]checkout.Line, len(req.Items))
	for i, it := range req.Items {
		lines[i] = checkout.Line{ProductID: it.ProductID, Title: it.Title, Quantity: it.Quantity}
	}

	url, err := h.checkout.Create(ctx, lines)
	if err != nil {
		h.checkoutError(w, r, err)
		return
	}

	e := &jx.Encoder{}
	e.ObjStart()
	e.FieldStart("checkoutUrl")
	e.Str(url)
	e.ObjEnd()
	writeJSON(w, http.StatusOK, e.Bytes())
}

// verifyTotal recomputes the claimed grand total from the submitted line
// prices plus the configured flat shipping rate. An order without a claimed
// total (or without item prices) skips the check; pricing authority stays
// with the upstream checkout either way.
func (h *Handler) verifyTotal(req orderRequest) string {
	if req.Total == nil {
		return ""
	}
	claimed, err := catalog.ParseMoney(req.Total.Amount, req.Total.Currency)
	if err != nil {
		return "malformed total"
	}

	c := cart.New()
	for _, it := range req.Items {
		if it.Price == nil {
			return ""
		}
		price, err := catalog.ParseMoney(it.Price.Amount, it.Price.Currency)
		if err != nil {
			return "malformed item price"
		}
		c.Add(cart.Line{
			ProductID: it.ProductID,
			Title:     it.Title,
			Quantity:  it.Quantity,
			Price:     price,
		})
	}

	total, err := c.Total(h.shipping)
	if err != nil {
		return err.Error()
	}
	if !total.Equal(claimed) {
		return "total mismatch: expected " + total.String()
	}
	return ""
}

// checkoutError maps checkout failures onto status codes. Upstream
// validation messages pass through verbatim; everything else is generic.
func (h *Handler) checkoutError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		noVariant  *checkout.NoVariantError
		badQty     *checkout.InvalidQuantityError
		userErrors storefront.UserErrors
	)
	switch {
	case errors.Is(err, checkout.ErrNoLines):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &noVariant):
		writeError(w, http.StatusBadRequest, noVariant.Error())
	case errors.As(err, &badQty):
		writeError(w, http.StatusBadRequest, badQty.Error())
	case errors.As(err, &userErrors):
		writeError(w, http.StatusUnprocessableEntity, userErrors.Error())
	default:
		serverError(w, r, err)
	}
}
