package handler

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/reelmart/storefront/internal/storefront"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (c contactRequest) validate() string {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return "name is required"
	case strings.TrimSpace(c.Email) == "":
		return "email is required"
	case strings.TrimSpace(c.Message) == "":
		return "message is required"
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return "email is invalid"
	}
	return ""
}

// submitContact forwards a contact-form submission upstream. Nothing is
// stored locally, so a submission that fails upstream is simply reported
// back to the client for retry.
func (h *Handler) submitContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	err := h.contact.SubmitContact(r.Context(), storefront.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		var userErrors storefront.UserErrors
		if errors.As(err, &userErrors) {
			writeError(w, http.StatusUnprocessableEntity, userErrors.Error())
			return
		}
		serverError(w, r, err)
		return
	}

	e := &jx.Encoder{}
	e.ObjStart()
	e.FieldStart("status")
	e.Str("ok")
	e.ObjEnd()
	writeJSON(w, http.StatusOK, e.Bytes())
}
