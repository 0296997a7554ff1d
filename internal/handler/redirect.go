package handler

import "net/http"

// redirectCheckout sends the browser back to the cart page. Checkout URLs
// are minted per order via POST /api/orders; a bare GET has nothing to
// resume.
func (h *Handler) redirectCheckout(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/cart", http.StatusFound)
}
