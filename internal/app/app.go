// Package app wires configuration, the upstream client, handlers and
// middleware into a running HTTP server.
package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/reelmart/storefront/internal/checkout"
	"github.com/reelmart/storefront/internal/handler"
	"github.com/reelmart/storefront/internal/pagecache"
	"github.com/reelmart/storefront/internal/storefront"
	"github.com/reelmart/storefront/internal/webhook"
	"github.com/reelmart/storefront/pkg/health"
	"github.com/reelmart/storefront/pkg/httpmiddleware"
)

// Run creates all dependencies, starts the HTTP server, and handles graceful
// shutdown. It is the single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	lg.Info("Initializing", zap.String("addr", cfg.Addr))

	// Upstream client. Credentials were validated at config load; NewClient
	// re-checks to keep the invariant local.
	client, err := storefront.NewClient(storefront.Config{
		Endpoint:    cfg.Upstream.Endpoint,
		AccessToken: cfg.Upstream.AccessToken,
		Timeout:     cfg.Upstream.Timeout,
		MaxAttempts: cfg.Upstream.MaxAttempts,
	})
	if err != nil {
		return errors.Wrap(err, "create storefront client")
	}

	shipping, err := cfg.Shipping.Money()
	if err != nil {
		return errors.Wrap(err, "shipping rate")
	}

	// Health check service.
	healthSvc := health.New()
	healthSvc.AddReadinessCheck("upstream", 5*time.Second, client.Ping)
	healthSvc.Start(ctx, 30*time.Second)
	healthSvc.SetReady(true)

	cache := pagecache.New(cfg.Cache.TTL)
	bridge := checkout.NewBridge(client, client)
	hooks := webhook.NewProcessor(webhook.NewVerifier(cfg.WebhookSecret), cache)

	h := handler.New(handler.Config{
		Catalog:  client,
		Checkout: bridge,
		Carts:    client,
		Contact:  client,
		Hooks:    hooks,
		Cache:    cache,
		Shipping: shipping,
	})

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", healthSvc.LiveEndpoint)
	mux.HandleFunc("/readyz", healthSvc.ReadyEndpoint)
	mux.Handle("/", h.Routes())

	instrumented := otelhttp.NewHandler(mux, "storefront-api",
		otelhttp.WithTracerProvider(m.TracerProvider()),
		otelhttp.WithMeterProvider(m.MeterProvider()),
	)

	server := &http.Server{
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
		Addr:              cfg.Addr,
		Handler: httpmiddleware.Wrap(instrumented,
			httpmiddleware.Recovery(),
			httpmiddleware.CORS(httpmiddleware.CORSConfig{
				AllowOrigins:     cfg.CORS.Origins,
				AllowHeaders:     []string{"Content-Type"},
				AllowCredentials: cfg.CORS.AllowCredentials,
				MaxAge:           86400,
			}),
			httpmiddleware.RateLimitWithCleanup(ctx, httpmiddleware.RateLimitConfig{
				Max:    cfg.RateLimit.Max,
				Window: cfg.RateLimit.Window,
			}),
			httpmiddleware.RequestID(),
			httpmiddleware.InjectLogger(zctx.From(ctx)),
			httpmiddleware.LogRequests(),
		),
	}

	// Graceful shutdown: wait for context cancellation, drain, then stop.
	shutdownDone := make(chan struct{})
	go func() {
		<-ctx.Done()
		healthSvc.SetReady(false)
		lg.Info("Readiness set to false, draining", zap.Duration("delay", cfg.Graceful.ReadinessDelay))
		time.Sleep(cfg.Graceful.ReadinessDelay)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Graceful.ShutdownTimeout)
		defer cancel()

		lg.Info("Shutting down server", zap.Duration("timeout", cfg.Graceful.ShutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			lg.Error("Server shutdown error", zap.Error(err))
		}
		healthSvc.Stop()
		close(shutdownDone)
	}()

	lg.Info("Server listening", zap.String("addr", cfg.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "server")
	}
	<-shutdownDone
	return nil
}
