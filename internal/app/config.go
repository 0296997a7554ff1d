package app

import (
	"os"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"

	"github.com/reelmart/storefront/internal/catalog"
)

// Config holds the complete application configuration, loadable from
// environment variables (STORE_ prefix), flags, or YAML config files.
type Config struct {
	Addr          string `default:"0.0.0.0:8080" usage:"API server listen address"`
	Upstream      UpstreamConfig
	WebhookSecret string `usage:"Shared secret for webhook signature verification (STORE_WEBHOOK_SECRET)" flag:"webhook-secret"`
	Shipping      ShippingConfig
	Cache         CacheConfig
	RateLimit     RateLimitConfig
	CORS          CORSConfig
	Graceful      GracefulConfig
}

// UpstreamConfig points at the commerce platform's GraphQL API. Both fields
// are required; the server refuses to start without them.
type UpstreamConfig struct {
	Endpoint    string        `usage:"Storefront GraphQL endpoint URL" flag:"upstream-endpoint"`
	AccessToken string        `usage:"Storefront access token (STORE_UPSTREAM_ACCESS_TOKEN)" flag:"upstream-token"`
	Timeout     time.Duration `default:"10s" usage:"Per-request timeout for upstream calls"`
	MaxAttempts int           `default:"1" usage:"Attempts per upstream call; >1 retries transport failures" flag:"upstream-attempts"`
}

// ShippingConfig is the flat shipping rate quoted with every order.
type ShippingConfig struct {
	Amount   string `default:"250" usage:"Flat shipping amount"`
	Currency string `default:"PKR" usage:"Shipping currency code"`
}

// Money parses the configured rate.
func (s ShippingConfig) Money() (catalog.Money, error) {
	return catalog.ParseMoney(s.Amount, s.Currency)
}

// CacheConfig controls the rendered-page cache.
type CacheConfig struct {
	TTL time.Duration `default:"5m" usage:"Page cache entry lifetime"`
}

// RateLimitConfig controls the per-client rate limiter.
type RateLimitConfig struct {
	Max    int           `default:"100" usage:"Max requests per window"`
	Window time.Duration `default:"1m"  usage:"Rate limit window duration"`
}

// CORSConfig controls Cross-Origin Resource Sharing headers.
type CORSConfig struct {
	Origins          []string `default:"*" usage:"Allowed CORS origins"`
	AllowCredentials bool     `default:"false" usage:"Allow credentials (cookies, auth headers)" flag:"cors-credentials"`
}

// GracefulConfig controls graceful shutdown timing.
type GracefulConfig struct {
	ReadinessDelay  time.Duration `default:"3s"  usage:"Delay after readiness=false before shutdown" flag:"readiness-delay"`
	ShutdownTimeout time.Duration `default:"15s" usage:"Maximum shutdown duration" flag:"shutdown-timeout"`
}

// LoadConfig loads configuration from environment variables, YAML config
// files, and applies platform-specific defaults.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "STORE",
		Files:     []string{"config.yaml", "/etc/storefront/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.applyPlatformDefaults()

	if cfg.Upstream.Endpoint == "" || cfg.Upstream.AccessToken == "" {
		return nil, errors.New("upstream endpoint and access token are required: set STORE_UPSTREAM_ENDPOINT and STORE_UPSTREAM_ACCESS_TOKEN")
	}
	if _, err := cfg.Shipping.Money(); err != nil {
		return nil, errors.Wrap(err, "shipping rate")
	}

	return &cfg, nil
}

// applyPlatformDefaults maps platform-provided environment variables
// (Railway, Render, etc.) that use standard names like PORT to the
// application's STORE_-prefixed configuration.
func (c *Config) applyPlatformDefaults() {
	if port := os.Getenv("PORT"); port != "" && c.Addr == "0.0.0.0:8080" {
		c.Addr = "0.0.0.0:" + port
	}
}
