package esdc

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestWithHTTPTimeout(t *testing.T) {
	t.Parallel()
	c := &Client{http: &http.Client{}}
	if err := WithHTTPTimeout(5 * time.Second)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.http.Timeout != 5*time.Second {
		t.Fatalf("http timeout not set")
	}

	if _, err := New("http://example.com", "key", WithHTTPTimeout(0)); !IsConfiguration(err) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestWithHTTPClient_Nil(t *testing.T) {
	t.Parallel()
	if _, err := New("http://example.com", "key", WithHTTPClient(nil)); !IsConfiguration(err) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestWithDebugLoggingWrapsTransport(t *testing.T) {
	t.Parallel()
	var called bool
	rt := roundTripFunc(func(*http.Request) (*http.Response, error) {
		called = true
		return &http.Response{StatusCode: 200, Body: http.NoBody, Header: make(http.Header)}, nil
	})
	c, err := New("http://example.com", "key",
		WithHTTPClient(&http.Client{Transport: rt}),
		WithDebugLogging(true),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	at, ok := c.http.Transport.(*authTransport)
	if !ok {
		t.Fatalf("auth transport not outermost: %T", c.http.Transport)
	}
	if _, ok := at.base.(*debugTransport); !ok {
		t.Fatalf("debug transport not installed: %T", at.base)
	}

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", http.NoBody)
	if _, err := c.http.Do(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if !called {
		t.Fatalf("base transport not invoked")
	}
}
