package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiveEndpoint_AlwaysOK(t *testing.T) {
	h := New()

	rec := httptest.NewRecorder()
	h.LiveEndpoint(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyEndpoint_NotReadyUntilSet(t *testing.T) {
	h := New()

	rec := httptest.NewRecorder()
	h.ReadyEndpoint(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	h.SetReady(true)
	rec = httptest.NewRecorder()
	h.ReadyEndpoint(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadiness_FailingCheckNeedsConsecutiveFailures(t *testing.T) {
	h := New()
	h.AddReadinessCheck("upstream", time.Second, func(context.Context) error {
		return errors.New("unreachable")
	})
	h.SetReady(true)

	c := h.checks[0]
	c.run(context.Background())
	assert.True(t, h.IsReady(), "one failure should not flip readiness")

	for range failureThreshold {
		c.run(context.Background())
	}
	assert.False(t, h.IsReady())
}

func TestReadiness_RecoversAfterSuccess(t *testing.T) {
	h := New()
	fail := true
	h.AddReadinessCheck("upstream", time.Second, func(context.Context) error {
		if fail {
			return errors.New("unreachable")
		}
		return nil
	})
	h.SetReady(true)

	c := h.checks[0]
	for range failureThreshold {
		c.run(context.Background())
	}
	require.False(t, h.IsReady())

	fail = false
	c.run(context.Background())
	assert.True(t, h.IsReady())
}
