package storefront

import (
	"strings"

	"github.com/go-faster/errors"
)

// ErrNotConfigured is returned when the upstream endpoint or access token is
// missing. This is a startup failure, never silently degraded.
var ErrNotConfigured = errors.New("storefront endpoint and access token are required")

// ErrProductNotFound is returned when a product lookup resolves to null.
var ErrProductNotFound = errors.New("product not found")

// ErrCollectionNotFound is returned when a collection lookup resolves to null.
var ErrCollectionNotFound = errors.New("collection not found")

// RequestError wraps a transport-level failure talking to the commerce
// platform. These are the only errors the client will retry.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return "upstream request failed: " + e.Err.Error()
}

func (e *RequestError) Unwrap() error { return e.Err }

// GraphQLError is a single error entry from the upstream response envelope.
type GraphQLError struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

// GraphQLErrors means the platform rejected the request document itself.
type GraphQLErrors []GraphQLError

func (e GraphQLErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ge := range e {
		msgs[i] = ge.Message
	}
	return "upstream graphql error: " + strings.Join(msgs, "; ")
}

// DecodeError marks a response that parsed as JSON but is missing fields the
// client requires. It is a hard failure for the request; no guessing beyond
// the media placeholder policy.
type DecodeError struct {
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return "malformed upstream response: " + e.Field + ": " + e.Err.Error()
	}
	return "malformed upstream response: missing " + e.Field
}

func (e *DecodeError) Unwrap() error { return e.Err }

// UserError is a user-facing validation failure reported by the platform,
// e.g. an out-of-stock variant during checkout creation.
type UserError struct {
	Field   []string `json:"field,omitempty"`
	Message string   `json:"message"`
}

// UserErrors concatenates every upstream validation message verbatim.
type UserErrors []UserError

func (e UserErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ue := range e {
		msgs[i] = ue.Message
	}
	return strings.Join(msgs, ", ")
}
