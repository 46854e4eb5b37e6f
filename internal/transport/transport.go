// Package transport builds the HTTP clients used for outbound provider and
// remote-configuration calls: pooled connections, per-request timeout, and an
// optional token-bucket rate limit on the whole client.
package transport

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Config holds HTTP client configuration.
type Config struct {
	// Timeout for individual HTTP requests
	Timeout time.Duration

	// RequestsPerSecond throttles outbound calls. 0 disables throttling.
	RequestsPerSecond float64

	// Burst is the token bucket size when throttling. Defaults to 1.
	Burst int

	// UserAgent for HTTP requests
	UserAgent string

	// Connection pool configuration
	Pool PoolConfig
}

// PoolConfig configures the HTTP transport (connection pooling).
type PoolConfig struct {
	// MaxIdleConns is the maximum number of idle connections across all hosts.
	MaxIdleConns int

	// MaxIdleConnsPerHost is the maximum idle connections per host.
	MaxIdleConnsPerHost int

	// MaxConnsPerHost is the maximum concurrent connections per host.
	MaxConnsPerHost int

	// IdleConnTimeout is the maximum time an idle connection stays open.
	IdleConnTimeout time.Duration

	// ForceAttemptHTTP2 forces HTTP/2 where the server allows it.
	ForceAttemptHTTP2 bool
}

// DefaultConfig returns sensible defaults for calls to Google APIs.
func DefaultConfig() *Config {
	return &Config{
		Timeout:           30 * time.Second,
		RequestsPerSecond: 0,
		Burst:             1,
		UserAgent:         "ytcatalog/1.0",
		Pool:              DefaultPoolConfig(),
	}
}

// DefaultPoolConfig returns sensible defaults for connection pooling.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 10,
		MaxConnsPerHost:     20,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}
}

// NewClient creates an HTTP client from the given configuration.
// A nil config uses defaults.
func NewClient(cfg *Config) *http.Client {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	base := &http.Transport{
		MaxIdleConns:        cfg.Pool.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.Pool.MaxIdleConnsPerHost,
		MaxConnsPerHost:     cfg.Pool.MaxConnsPerHost,
		IdleConnTimeout:     cfg.Pool.IdleConnTimeout,
		ForceAttemptHTTP2:   cfg.Pool.ForceAttemptHTTP2,
	}

	var rt http.RoundTripper = &headerRoundTripper{
		base:      base,
		userAgent: cfg.UserAgent,
	}

	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		rt = &limitedRoundTripper{
			base:    rt,
			limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst),
		}
	}

	return &http.Client{
		Transport: rt,
		Timeout:   cfg.Timeout,
	}
}

// headerRoundTripper sets the User-Agent header on every request.
type headerRoundTripper struct {
	base      http.RoundTripper
	userAgent string
}

func (t *headerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.userAgent != "" && req.Header.Get("User-Agent") == "" {
		// Clone before mutating; RoundTrippers must not modify the request.
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.userAgent)
	}
	return t.base.RoundTrip(req)
}

// limitedRoundTripper blocks until the token bucket admits the request or the
// request context expires.
type limitedRoundTripper struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

func (t *limitedRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.base.RoundTrip(req)
}
