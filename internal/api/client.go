// Package api is the typed client for the upstream delivery API. Every call
// takes a context so an abandoned page load cancels its upstream request.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

var (
	// ErrUnauthorized maps any upstream 401: missing, stale or rejected bearer.
	ErrUnauthorized = errors.New("upstream: unauthorized")
	ErrNotFound     = errors.New("upstream: not found")
)

// StatusError is returned for non-2xx responses that carry no dedicated
// sentinel. The client does not distinguish upstream error bodies.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string { return fmt.Sprintf("upstream: http status=%d", e.Code) }

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// do issues one request. A non-empty bearer is sent as `Bearer <value>`,
// where the value is the raw upstream session cookie, not a token format.
func (c *Client) do(ctx context.Context, method, path, bearer string, body any, out any) error {
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("upstream: marshal request: %w", err)
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("upstream: new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upstream: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return &StatusError{Code: resp.StatusCode}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("upstream: decode %s %s: %w", method, path, err)
		}
	}
	return nil
}
