package chamber

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// API defines the controller operations the rest of the application needs.
// This interface is implemented by *Client and can be used for testing.
type API interface {
	FetchStatus(ctx context.Context) (*Status, error)
	FetchTrend(ctx context.Context) (*TrendSeries, error)
	Send(ctx context.Context, cmd Command, payload any) error
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// Client talks to the curing chamber controller's HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultHost      = "127.0.0.1:5050"
	defaultUserAgent = "barnview/0.1"
	requestTimeout   = 2 * time.Second
)

// NewClient builds a Client for the provided host:port value. A bare
// host:port gets an http:// scheme; path, query and fragment are stripped.
func NewClient(host string) (*Client, error) {
	base, err := parseBaseURL(host)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Host returns the configured controller address.
func (c *Client) Host() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.Host
}

// FetchStatus retrieves and normalizes the current controller status. It
// issues exactly one request and never retries; retry cadence belongs to the
// refresh loop.
func (c *Client) FetchStatus(ctx context.Context) (*Status, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload Status
	if err := c.get(ctx, "/api/status", &payload); err != nil {
		return nil, err
	}
	payload.normalize()
	return &payload, nil
}

// FetchTrend retrieves the history series for charting. A controller with no
// history yet yields (nil, nil); that is an expected outcome, not an error.
// A payload with ragged arrays yields a *MalformedTrendError.
func (c *Client) FetchTrend(ctx context.Context) (*TrendSeries, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	body, err := c.getRaw(ctx, "/api/trend_data")
	if err != nil {
		return nil, err
	}
	var payload TrendSeries
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &MalformedTrendError{Reason: "decode: " + err.Error()}
	}
	if payload.Len() == 0 {
		return nil, nil
	}
	if err := payload.validate(); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Send issues one command POST. A 2xx response means success; the body is
// never inspected. Send is mode-agnostic: MANUAL-only gating is the caller's
// concern.
func (c *Client) Send(ctx context.Context, cmd Command, payload any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	endpoint := "/api/" + string(cmd)

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode %s payload: %w", cmd, err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.resolve(endpoint), body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return &ConnectionError{Endpoint: endpoint, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &CommandRejectedError{Command: cmd, StatusCode: resp.StatusCode}
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpoint string, dest any) error {
	body, err := c.getRaw(ctx, endpoint)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return &ConnectionError{Endpoint: endpoint, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func (c *Client) getRaw(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resolve(endpoint), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ConnectionError{Endpoint: endpoint, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, &ConnectionError{
			Endpoint: endpoint,
			Err:      fmt.Errorf("returned status %d", resp.StatusCode),
		}
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) resolve(endpoint string) string {
	rel := &url.URL{Path: endpoint}
	return c.baseURL.ResolveReference(rel).String()
}

func parseBaseURL(host string) (*url.URL, error) {
	trimmed := strings.TrimSpace(host)
	if trimmed == "" {
		trimmed = defaultHost
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse host %q: %w", host, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
