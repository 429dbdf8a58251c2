// Package esdc is a client library for the Danube Cloud (Erigones SDDC)
// HTTP API. It resolves resource paths against a configured base URL,
// attaches the API key to every outgoing request and hands back the raw
// *http.Response for the caller to inspect. The client never retries and
// never interprets status codes.
package esdc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/erigones/esdc-go/internal/api"
)

// DefaultAPIKeyHeader is the request header carrying the API key, per the
// Danube Cloud server convention. Override with WithAPIKeyHeader.
const DefaultAPIKeyHeader = "ES-API-KEY"

const requestIDHeader = "X-Request-ID"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is a Danube Cloud API HTTP client.
//
// Configuration is fixed at construction. The only mutable state is the
// session token managed by Login/Logout, which sits behind a lock, so a
// Client is safe to share across goroutines.
type Client struct {
	apiURL    string
	http      *http.Client
	apiKey    string
	keyHeader string

	mu    sync.RWMutex
	token string // session token set by Login, empty otherwise
}

// New constructs a Client for the Danube Cloud API at apiURL, authenticating
// with apiKey. Additional options can be provided via functional arguments.
//
// The returned error wraps ErrConfiguration when apiURL is empty or not an
// absolute http(s) URL, when apiKey is empty, or when an option rejects its
// value. Construction is the only place configuration is validated.
func New(apiURL, apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: api key cannot be empty", ErrConfiguration)
	}
	if err := validateAPIURL(apiURL); err != nil {
		return nil, err
	}

	c := &Client{
		apiURL:    strings.TrimRight(apiURL, "/"),
		apiKey:    apiKey,
		keyHeader: DefaultAPIKeyHeader,
		http:      &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// Wrap HTTP transport to automatically add authentication headers.
	c.wrapTransportWithAuth()

	return c, nil
}

func validateAPIURL(apiURL string) error {
	if apiURL == "" {
		return fmt.Errorf("%w: api url cannot be empty", ErrConfiguration)
	}
	u, err := url.Parse(apiURL)
	if err != nil {
		return fmt.Errorf("%w: api url %q: %v", ErrConfiguration, apiURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: api url %q must be an absolute http(s) URL", ErrConfiguration, apiURL)
	}
	return nil
}

// wrapTransportWithAuth wraps the HTTP client's transport to automatically
// add the API key header (and the session token, once Login succeeded) to
// all requests going through this client.
func (c *Client) wrapTransportWithAuth() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &authTransport{base: baseTransport, client: c}
}

// authTransport wraps an http.RoundTripper to attach authentication and
// bookkeeping headers to every request.
type authTransport struct {
	base   http.RoundTripper
	client *Client
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	cloned.Header.Set(t.client.keyHeader, t.client.apiKey)
	if tok := t.client.sessionToken(); tok != "" {
		cloned.Header.Set("Authorization", "Token "+tok)
	}
	if cloned.Header.Get("User-Agent") == "" {
		cloned.Header.Set("User-Agent", userAgent)
	}
	if cloned.Header.Get(requestIDHeader) == "" {
		cloned.Header.Set(requestIDHeader, uuid.NewString())
	}

	requestsTotal.WithLabelValues(cloned.Method).Inc()
	resp, err := t.base.RoundTrip(cloned)
	if err != nil {
		requestFailuresTotal.WithLabelValues(cloned.Method).Inc()
		return nil, err
	}
	return resp, nil
}

// --------------------------------------------------------------------
// Request methods
// --------------------------------------------------------------------

// Do performs an HTTP request against the given API resource and returns the
// transport's response unmodified. params are encoded into the query string;
// body is JSON-encoded when non-nil. Non-2xx responses are returned like any
// other response; transport-level failures propagate as errors. This method
// is used by all public verb methods on this type.
func (c *Client) Do(ctx context.Context, method, resource string, params url.Values, body any) (*http.Response, error) {
	req, err := api.NewRequest(ctx, method, api.ResolveURL(c.apiURL, resource), params, body)
	if err != nil {
		return nil, err
	}
	return c.http.Do(req)
}

// Get performs a GET request to the Danube Cloud API.
func (c *Client) Get(ctx context.Context, resource string, params url.Values) (*http.Response, error) {
	return c.Do(ctx, http.MethodGet, resource, params, nil)
}

// Post performs a POST request to the Danube Cloud API.
func (c *Client) Post(ctx context.Context, resource string, body any) (*http.Response, error) {
	return c.Do(ctx, http.MethodPost, resource, nil, body)
}

// Put performs a PUT request to the Danube Cloud API.
func (c *Client) Put(ctx context.Context, resource string, body any) (*http.Response, error) {
	return c.Do(ctx, http.MethodPut, resource, nil, body)
}

// Delete performs a DELETE request to the Danube Cloud API.
func (c *Client) Delete(ctx context.Context, resource string, params url.Values) (*http.Response, error) {
	return c.Do(ctx, http.MethodDelete, resource, params, nil)
}

// Options performs an OPTIONS request to the Danube Cloud API.
func (c *Client) Options(ctx context.Context, resource string) (*http.Response, error) {
	return c.Do(ctx, http.MethodOptions, resource, nil, nil)
}

// --------------------------------------------------------------------
// Session authentication
// --------------------------------------------------------------------

// Login authenticates with username and password (POST /accounts/login) and
// stores the returned session token. Subsequent requests send the token as
// "Authorization: Token <token>" alongside the API key header.
func (c *Client) Login(ctx context.Context, username, password string) error {
	resp, err := c.Post(ctx, "/accounts/login", api.LoginRequest{Username: username, Password: password})
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if !statusOK(resp.StatusCode) {
		return fmt.Errorf("login: status %d", resp.StatusCode)
	}
	token, err := api.DecodeLoginToken(resp.Body)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	c.setSessionToken(token)
	return nil
}

// Logout invalidates the session (GET /accounts/logout) and drops the stored
// token.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.Get(ctx, "/accounts/logout", nil)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if !statusOK(resp.StatusCode) {
		return fmt.Errorf("logout: status %d", resp.StatusCode)
	}
	c.setSessionToken("")
	return nil
}

// HasSession reports whether a session token from Login is currently held.
// The API key is attached regardless.
func (c *Client) HasSession() bool {
	return c.sessionToken() != ""
}

func (c *Client) sessionToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) setSessionToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// --------------------------------------------------------------------
// Convenience
// --------------------------------------------------------------------

// Ping checks API reachability (GET /ping) and returns the response body
// text. Unlike the verb methods this is a health-check helper, so a non-2xx
// status is reported as an error.
func (c *Client) Ping(ctx context.Context) (string, error) {
	resp, err := c.Get(ctx, "/ping", nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if !statusOK(resp.StatusCode) {
		return "", fmt.Errorf("ping: status %d", resp.StatusCode)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("ping: %w", err)
	}
	return strings.Trim(strings.TrimSpace(string(b)), `"`), nil
}

func statusOK(code int) bool { return code >= 200 && code < 300 }
