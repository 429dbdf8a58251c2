// Package api assembles HTTP requests for the Danube Cloud API.
// Authentication headers are attached by the client's transport wrapper,
// not here.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// ResolveURL joins the API base URL and a resource path with exactly one
// separating slash, so "vm" and "/vm" resolve to the same URL.
func ResolveURL(baseURL, resource string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(resource, "/")
}

// NewRequest builds an HTTP request for the resolved target URL. params are
// encoded into the query string; body is JSON-encoded when non-nil. The
// request advertises JSON on both sides, matching the server's content
// negotiation.
func NewRequest(ctx context.Context, method, target string, params url.Values, body any) (*http.Request, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return nil, err
	}
	if len(params) > 0 {
		req.URL.RawQuery = params.Encode()
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}
