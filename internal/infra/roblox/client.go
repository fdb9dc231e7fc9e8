// Package roblox implements the group-management API client. All error
// classification happens here: callers only ever see the domain error
// taxonomy (ErrRateLimited, ErrInvalidCredential, PlatformError), never
// raw HTTP status codes.
package roblox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/vietddude/ranksync/internal/core/domain"
	"github.com/vietddude/ranksync/internal/metrics"
)

const (
	defaultGroupsBaseURL = "https://groups.roblox.com"
	defaultUsersBaseURL  = "https://users.roblox.com"

	securityCookieName = ".ROBLOSECURITY"
	csrfTokenHeader    = "x-csrf-token"
)

// Client talks to the platform's groups and users services. It is safe
// for sequential reuse; the only mutable state is the cached CSRF token.
type Client struct {
	httpClient *http.Client
	groupsURL  string
	usersURL   string
	cookie     domain.Secret

	mu   sync.Mutex
	csrf string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURLs overrides the service base URLs. Used by tests.
func WithBaseURLs(groupsURL, usersURL string) Option {
	return func(c *Client) {
		c.groupsURL = groupsURL
		c.usersURL = usersURL
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client authenticated with the given security cookie.
func NewClient(cookie domain.Secret, opts ...Option) *Client {
	c := &Client{
		cookie:    cookie,
		groupsURL: defaultGroupsBaseURL,
		usersURL:  defaultUsersBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// apiErrorBody is the platform's error envelope.
type apiErrorBody struct {
	Errors []struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

// do issues one API request and decodes the response into out (if non-nil).
// Mutating calls are replayed once when the platform demands a fresh CSRF
// token (403 carrying an x-csrf-token header); the token is cached for
// subsequent calls.
func (c *Client) do(ctx context.Context, endpoint, method, url string, body, out any) error {
	start := time.Now()
	err := c.doOnce(ctx, method, url, body, out, true)
	metrics.APILatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	metrics.APIRequests.WithLabelValues(endpoint, outcomeLabel(err)).Inc()
	return err
}

func (c *Client) doOnce(ctx context.Context, method, url string, body, out any, allowCSRFRetry bool) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if !c.cookie.IsZero() {
		req.AddCookie(&http.Cookie{Name: securityCookieName, Value: c.cookie.Expose()})
	}
	if method != http.MethodGet {
		c.mu.Lock()
		if c.csrf != "" {
			req.Header.Set(csrfTokenHeader, c.csrf)
		}
		c.mu.Unlock()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("api call: %w", err)
	}
	defer resp.Body.Close()

	// CSRF handshake: the platform rejects the call and hands back the
	// token to use. Replay once with the fresh token.
	if resp.StatusCode == http.StatusForbidden && allowCSRFRetry {
		if token := resp.Header.Get(csrfTokenHeader); token != "" {
			c.mu.Lock()
			c.csrf = token
			c.mu.Unlock()
			io.Copy(io.Discard, resp.Body)
			return c.doOnce(ctx, method, url, body, out, false)
		}
	}

	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return domain.ErrRateLimited
	case http.StatusUnauthorized:
		return domain.ErrInvalidCredential
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return platformError(resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// platformError extracts the platform's structured error from a non-2xx
// response body, falling back to the raw body when it does not parse.
func platformError(status int, raw []byte) error {
	var body apiErrorBody
	if err := json.Unmarshal(raw, &body); err == nil && len(body.Errors) > 0 {
		return &domain.PlatformError{
			StatusCode: status,
			Code:       body.Errors[0].Code,
			Message:    body.Errors[0].Message,
		}
	}
	return &domain.PlatformError{
		StatusCode: status,
		Message:    string(raw),
	}
}

func outcomeLabel(err error) string {
	if err == nil {
		return "ok"
	}
	return "error"
}
