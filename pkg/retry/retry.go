// Package retry runs an operation a bounded number of times with
// exponential backoff and jitter between attempts.
package retry

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/go-faster/errors"
)

const defaultBaseDelay = 100 * time.Millisecond

// Config controls retry behaviour. The zero value runs the operation once
// with no retries.
type Config struct {
	// MaxAttempts is the total number of tries, including the first.
	// Values below one are treated as one.
	MaxAttempts int
	// BaseDelay is the delay before the first retry; each further retry
	// doubles it. A random jitter of up to half the delay is added.
	BaseDelay time.Duration
	// ShouldRetry filters retryable errors. A nil filter retries everything.
	ShouldRetry func(error) bool
}

// Do runs fn until it succeeds, a non-retryable error occurs, attempts run
// out, or the context is done. The last error is returned.
func Do(ctx context.Context, cfg Config, fn func() error) error {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = defaultBaseDelay
	}

	var err error
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		if attempt > 0 {
			if waitErr := wait(ctx, backoff(cfg.BaseDelay, attempt)); waitErr != nil {
				return errors.Wrap(err, waitErr.Error())
			}
		}
		if err = fn(); err == nil {
			return nil
		}
		if cfg.ShouldRetry != nil && !cfg.ShouldRetry(err) {
			return err
		}
	}
	return err
}

// backoff returns the delay before the given retry attempt (attempt >= 1):
// base * 2^(attempt-1) plus jitter up to half of that.
func backoff(base time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	return d + rand.N(d/2+1)
}

func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
