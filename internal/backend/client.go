// Package backend is the typed client for the NetCinema REST API.  The
// backend owns every piece of authoritative state (seat locks, bookings,
// accounts, payments); this package only speaks its wire contract: JSON
// bodies wrapped in a {success, data, message} envelope under /api.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/OthonLozano/NetCinema-WebApplication/internal/model"
)

// Client issues requests against one backend base URL.  The zero value is
// not usable; construct with New.  Client is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// New creates a client for the given base URL (e.g. "http://host:8080/api").
// A non-positive timeout falls back to ten seconds.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// WithToken returns a shallow copy of the client that sends the given
// bearer token on every request.  The receiver is left untouched so a
// single shared client can serve many authenticated callers.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// get issues a GET and decodes the envelope data into out (which may be
// nil when the caller only cares about success).
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// post issues a POST with a JSON body.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// put issues a PUT with a JSON body.
func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// patch issues a PATCH, typically against the deactivation endpoints.
func (c *Client) patch(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, out)
}

// del issues a DELETE.
func (c *Client) del(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do performs one request/response cycle.  Transport failures come back
// wrapped in ErrUnavailable; anything the backend refused becomes an
// *APIError carrying the envelope message when one was present.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	var env model.Envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			// Not an envelope at all (proxy error page, empty 500...).
			if resp.StatusCode >= 400 {
				return &APIError{Status: resp.StatusCode}
			}
			return fmt.Errorf("decode envelope: %w", err)
		}
	}

	if resp.StatusCode >= 400 || !env.Success {
		return &APIError{Status: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

// maxResponseBytes bounds how much of a backend response is read; the
// largest legitimate payload is a full booking listing.
const maxResponseBytes = 8 << 20
