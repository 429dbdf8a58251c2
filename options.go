package esdc

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied before the authentication transport wrapper is
// installed, so transport-related options (like debug logging) will be
// placed underneath the API-key wrapper. Options must be deterministic and
// side-effect free.
type Option func(*Client) error

// WithHTTPClient replaces the underlying http.Client used by the library.
// The given client's transport is still wrapped so authentication headers
// are attached.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) error {
		if h == nil {
			return fmt.Errorf("%w: http client must not be nil", ErrConfiguration)
		}
		c.http = h
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the
// library.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP
// request (including connection, TLS handshake, redirects, and reading the
// response). The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("%w: http timeout must be > 0", ErrConfiguration)
		}
		c.http.Timeout = d
		return nil
	}
}

// WithAPIKeyHeader overrides the request header name carrying the API key.
// The server-side convention is ES-API-KEY (DefaultAPIKeyHeader); only
// change this when talking to a deployment that expects the key elsewhere.
func WithAPIKeyHeader(name string) Option {
	return func(c *Client) error {
		if name == "" {
			return fmt.Errorf("%w: api key header must not be empty", ErrConfiguration)
		}
		c.keyHeader = name
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// The debug transport is installed beneath the API-key wrapper; logs are
// emitted before the request is forwarded to the next transport.
// Do not enable this option in production environments as it increases
// verbosity and may include headers and method/URL metadata in logs.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}
