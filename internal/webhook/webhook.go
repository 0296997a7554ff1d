// Package webhook verifies and applies inbound notifications from the
// upstream commerce platform. Verification is an HMAC-SHA256 over the raw
// request body; recognized topics invalidate cached catalog pages.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/go-faster/errors"
)

// Header names used by the upstream platform's webhook deliveries.
const (
	SignatureHeader = "X-Shopify-Hmac-Sha256"
	TopicHeader     = "X-Shopify-Topic"
	DeliveryHeader  = "X-Shopify-Webhook-Id"
)

// ErrSignatureInvalid rejects a delivery whose signature header or shared
// secret is missing, or whose computed signature does not match. The body is
// never processed in that case.
var ErrSignatureInvalid = errors.New("webhook signature invalid")

// Verifier checks delivery signatures against a shared secret.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a Verifier. An empty secret fails every verification.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify computes the base64-encoded HMAC-SHA256 of body and compares it in
// constant time against the header-supplied signature.
func (v *Verifier) Verify(body []byte, signature string) error {
	if len(v.secret) == 0 || signature == "" {
		return ErrSignatureInvalid
	}
	provided, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return ErrSignatureInvalid
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write(body)
	if !hmac.Equal(mac.Sum(nil), provided) {
		return ErrSignatureInvalid
	}
	return nil
}

// Invalidator drops cached pages under a key prefix.
type Invalidator interface {
	InvalidatePrefix(prefix string)
}

// seenCapacity sizes the delivery-id bloom filter. A false positive only
// skips invalidating an already-fresh cache entry, never a verification.
const (
	seenCapacity = 100_000
	seenFPR      = 0.001
)

// Processor verifies deliveries and routes recognized topics to cache
// invalidation. Redeliveries are suppressed via a bloom filter over the
// upstream delivery id.
type Processor struct {
	verifier *Verifier
	cache    Invalidator

	mu   sync.Mutex
	seen *bloom.BloomFilter
}

// NewProcessor creates a Processor over the given verifier and cache.
func NewProcessor(verifier *Verifier, cache Invalidator) *Processor {
	return &Processor{
		verifier: verifier,
		cache:    cache,
		seen:     bloom.NewWithEstimates(seenCapacity, seenFPR),
	}
}

// Process handles one delivery. Signature failures return
// ErrSignatureInvalid before anything else runs. Unrecognized topics are
// accepted and ignored.
func (p *Processor) Process(body []byte, topic, signature, deliveryID string) error {
	if err := p.verifier.Verify(body, signature); err != nil {
		return err
	}
	if deliveryID != "" && p.alreadySeen(deliveryID) {
		return nil
	}

	switch {
	case strings.HasPrefix(topic, "products/"):
		p.cache.InvalidatePrefix("/api/products")
	case strings.HasPrefix(topic, "collections/"):
		p.cache.InvalidatePrefix("/api/collections")
	}
	return nil
}

func (p *Processor) alreadySeen(deliveryID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.seen.TestAndAddString(deliveryID)
}
