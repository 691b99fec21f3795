// Package transport implements the HTTP round trips consumed by the registry
// client: raw text GET, JSON GET, and JSON POST. Any non-200 status becomes a
// *StatusError. The package performs no retries and sets no timeouts of its
// own; callers that need a timeout policy supply their own *http.Client.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/vsx-labs/vsx/internal/branding"
)

// Client issues the HTTP requests for the registry client.
type Client struct {
	httpClient *http.Client
	userAgent  string
	logger     *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (useful for testing and timeouts).
func WithHTTPClient(c *http.Client) Option {
	return func(t *Client) {
		t.httpClient = c
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(t *Client) {
		t.logger = l
	}
}

// New creates a transport Client with the given options.
func New(opts ...Option) *Client {
	t := &Client{
		httpClient: http.DefaultClient,
		userAgent:  branding.UserAgent(),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// StatusError reports a response with a status other than 200 OK.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s returned status %d", e.Method, e.URL, e.StatusCode)
}

// FetchText issues a GET and returns the response body as raw text.
func (c *Client) FetchText(ctx context.Context, url string) (string, error) {
	data, err := c.do(ctx, http.MethodGet, url, nil, "", "")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FetchJSON issues a GET with an Accept: application/json header and decodes
// the response body into into.
func (c *Client) FetchJSON(ctx context.Context, url string, into any) error {
	data, err := c.do(ctx, http.MethodGet, url, nil, "", "application/json")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, into); err != nil {
		return fmt.Errorf("parsing JSON response from %s: %w", url, err)
	}
	return nil
}

// PostJSON serializes body, issues a POST with JSON content-type and accept
// headers, and decodes the response body into into.
func (c *Client) PostJSON(ctx context.Context, url string, body, into any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request body for %s: %w", url, err)
	}

	data, err := c.do(ctx, http.MethodPost, url, bytes.NewReader(payload), "application/json", "application/json")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, into); err != nil {
		return fmt.Errorf("parsing JSON response from %s: %w", url, err)
	}
	return nil
}

// do performs one round trip and returns the body on a 200 response.
func (c *Client) do(ctx context.Context, method, url string, body io.Reader, contentType, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", url, err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	c.logger.Debug("http request", "method", method, "url", url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Method: method, URL: url, StatusCode: resp.StatusCode}
	}
	return data, nil
}
