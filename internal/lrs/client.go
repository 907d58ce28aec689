// Package lrs reads xAPI statements from a Learning Record Store.
package lrs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/frazier-at-cpcc/tsugi-xapi/internal/domain/xapi"
)

// Fetcher returns up to limit statements recorded for an agent.
// Implementations may call a live LRS or read a local dump (for tests and
// offline reports).
type Fetcher interface {
	Statements(ctx context.Context, agent xapi.Agent, limit int) ([]xapi.Statement, error)
}

// Version is sent as X-Experience-API-Version.
const Version = "1.0.3"

// DefaultTimeout bounds a single statements request.
const DefaultTimeout = 30 * time.Second

// Client queries the statements resource of an LRS with HTTP Basic auth.
type Client struct {
	endpoint string       // e.g. "https://lrs.example.edu/xapi"
	key      string       // Basic auth user
	secret   string       // Basic auth password
	client   *http.Client // reused across calls
}

// Compile-time check: *Client satisfies the Fetcher interface.
var _ Fetcher = (*Client)(nil)

// Error is returned when the LRS could not be queried so callers can tell an
// unreachable store from a rejected request.
type Error struct {
	// StatusCode is the HTTP status, 0 when no response was received.
	StatusCode int
	Reason     string
	Wrapped    error
}

func (e *Error) Error() string {
	msg := e.Reason
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("HTTP %d", e.StatusCode)
		if e.Reason != "" {
			msg += ": " + e.Reason
		}
	}
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.Wrapped)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

// NewClient creates a client for the LRS at endpoint. A non-positive timeout
// falls back to DefaultTimeout.
func NewClient(endpoint, key, secret string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		key:      key,
		secret:   secret,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Statements issues GET {endpoint}/statements?agent=...&limit=... and decodes
// the StatementResult body. It does not follow "more" links and never
// retries; any non-200 response is an *Error.
func (c *Client) Statements(ctx context.Context, agent xapi.Agent, limit int) ([]xapi.Statement, error) {
	q := url.Values{}
	q.Set("agent", agent.JSON())
	q.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/statements?"+q.Encode(), nil)
	if err != nil {
		return nil, &Error{Reason: "failed to create request", Wrapped: err}
	}
	req.SetBasicAuth(c.key, c.secret)
	req.Header.Set("X-Experience-API-Version", Version)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &Error{Reason: "request failed", Wrapped: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{StatusCode: resp.StatusCode}
	}

	var result xapi.StatementResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &Error{StatusCode: resp.StatusCode, Reason: "invalid statement result", Wrapped: err}
	}
	return result.Statements, nil
}
