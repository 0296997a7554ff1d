// Package health provides liveness and readiness endpoints. Readiness
// checks run in background goroutines so probe handlers never block on a
// slow dependency.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// CheckFunc reports the health of one dependency; nil means healthy.
type CheckFunc func(ctx context.Context) error

// failureThreshold is how many consecutive failures mark a check unhealthy,
// avoiding flapping on a single transient error.
const failureThreshold = 3

type check struct {
	name    string
	timeout time.Duration
	fn      CheckFunc

	healthy atomic.Bool
	lastErr atomic.Pointer[error]
	fails   int
}

func (c *check) run(ctx context.Context) {
	checkCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err := c.fn(checkCtx)
	c.lastErr.Store(&err)
	if err != nil {
		c.fails++
		if c.fails >= failureThreshold {
			c.healthy.Store(false)
		}
		return
	}
	c.fails = 0
	c.healthy.Store(true)
}

// Health manages readiness state for a service. The service starts not
// ready; call SetReady(true) once initialization completes and
// SetReady(false) while draining.
type Health struct {
	ready  atomic.Bool
	mu     sync.Mutex
	checks []*check
	cancel context.CancelFunc
}

// New creates a Health instance with no checks registered.
func New() *Health {
	return &Health{}
}

// AddReadinessCheck registers a named dependency check with a per-run
// timeout. Register all checks before Start.
func (h *Health) AddReadinessCheck(name string, timeout time.Duration, fn CheckFunc) {
	c := &check{name: name, timeout: timeout, fn: fn}
	c.healthy.Store(true)

	h.mu.Lock()
	h.checks = append(h.checks, c)
	h.mu.Unlock()
}

// Start runs every registered check at the given interval until Stop or ctx
// cancellation.
func (h *Health) Start(ctx context.Context, interval time.Duration) {
	ctx, cancel := context.WithCancel(ctx)

	h.mu.Lock()
	h.cancel = cancel
	checks := h.checks
	h.mu.Unlock()

	for _, c := range checks {
		go func(c *check) {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			c.run(ctx)
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					c.run(ctx)
				}
			}
		}(c)
	}
}

// Stop cancels the background check goroutines.
func (h *Health) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
}

// SetReady flips the manual readiness gate.
func (h *Health) SetReady(ready bool) {
	h.ready.Store(ready)
}

// IsReady is true when the service is marked ready and every check passes.
func (h *Health) IsReady() bool {
	if !h.ready.Load() {
		return false
	}
	h.mu.Lock()
	checks := h.checks
	h.mu.Unlock()
	for _, c := range checks {
		if !c.healthy.Load() {
			return false
		}
	}
	return true
}

type statusResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// LiveEndpoint always reports the process as alive.
func (h *Health) LiveEndpoint(w http.ResponseWriter, _ *http.Request) {
	writeStatus(w, http.StatusOK, statusResponse{Status: "ok"})
}

// ReadyEndpoint reports 200 when ready, 503 otherwise, with per-check
// detail.
func (h *Health) ReadyEndpoint(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	checks := h.checks
	h.mu.Unlock()

	detail := make(map[string]string, len(checks))
	for _, c := range checks {
		state := "ok"
		if !c.healthy.Load() {
			state = "failing"
			if p := c.lastErr.Load(); p != nil && *p != nil {
				state = (*p).Error()
			}
		}
		detail[c.name] = state
	}

	if h.IsReady() {
		writeStatus(w, http.StatusOK, statusResponse{Status: "ok", Checks: detail})
		return
	}
	writeStatus(w, http.StatusServiceUnavailable, statusResponse{Status: "unavailable", Checks: detail})
}

func writeStatus(w http.ResponseWriter, code int, resp statusResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}
