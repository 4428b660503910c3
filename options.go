package workshop

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Option configures a Client during construction in New.
//
// Options are applied before the User-Agent transport wrapper is
// installed, so transport-related options (like debug logging) end up
// underneath it. Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithAPIKey configures the key sent with privileged calls.
func WithAPIKey(key string) Option {
	return func(c *Client) error {
		c.apiKey = key
		return nil
	}
}

// WithProxyDomain routes requests to a third-party host implementing the
// Steam request contract; see Client.SetProxyDomain for how the value is
// interpreted.
func WithProxyDomain(domain string) Option {
	return func(c *Client) error {
		c.SetProxyDomain(domain)
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client. Use this to supply
// a custom transport, proxy settings, or connection pool.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP
// request. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response
// is dumped to the log when enabled is true. Not for production use; the
// dumps include the API key query parameter.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			base := c.http.Transport
			if base == nil {
				base = http.DefaultTransport
			}
			c.http.Transport = &debugTransport{base: base}
		}
		return nil
	}
}

// envConfig mirrors the STEAM_WORKSHOP_* environment variables read by
// FromEnv.
type envConfig struct {
	APIKey      string        `envconfig:"API_KEY"`
	ProxyDomain string        `envconfig:"PROXY_DOMAIN"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT"`
	Debug       bool          `envconfig:"DEBUG"`
}

// FromEnv loads client configuration from the environment:
//
//	STEAM_WORKSHOP_API_KEY       API key for privileged calls
//	STEAM_WORKSHOP_PROXY_DOMAIN  proxy host replacing api.steampowered.com
//	STEAM_WORKSHOP_HTTP_TIMEOUT  request timeout, e.g. "10s"
//	STEAM_WORKSHOP_DEBUG         "true" to dump HTTP traffic
//
// Unset variables leave the corresponding setting untouched, so options
// placed after FromEnv override the environment.
func FromEnv() Option {
	return func(c *Client) error {
		var cfg envConfig
		if err := envconfig.Process("steam_workshop", &cfg); err != nil {
			return err
		}
		if cfg.APIKey != "" {
			c.apiKey = cfg.APIKey
		}
		if cfg.ProxyDomain != "" {
			c.SetProxyDomain(cfg.ProxyDomain)
		}
		if cfg.HTTPTimeout > 0 {
			c.http.Timeout = cfg.HTTPTimeout
		}
		if cfg.Debug {
			return WithDebugLogging(true)(c)
		}
		return nil
	}
}
