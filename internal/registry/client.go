package registry

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	searchPath = "api/-/search"
	queryPath  = "api/-/query"
)

// Client talks to one extension registry. It holds only immutable
// configuration, so concurrent calls on the same instance are safe.
type Client struct {
	cfg       Config
	transport Transport
	logger    *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// New creates a Client for the registry at cfg.BaseURL.
func New(cfg Config, transport Transport, opts ...Option) *Client {
	c := &Client{
		cfg:       cfg,
		transport: transport,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config returns the client's immutable configuration.
func (c *Client) Config() Config {
	return c.cfg
}

// endpoint resolves a registry API path against the configured base URL.
func (c *Client) endpoint(path string) string {
	return strings.TrimSuffix(c.cfg.BaseURL, "/") + "/" + path
}

// Search issues a search request and returns the parsed result unmodified.
// params may be nil; zero-valued fields are omitted from the query string.
// Pagination is the caller's concern via Offset and Size.
func (c *Client) Search(ctx context.Context, params *SearchParams) (*SearchResult, error) {
	url := c.endpoint(searchPath) + params.encode()
	c.logger.Debug("searching registry", "url", url)

	var result SearchResult
	if err := c.transport.FetchJSON(ctx, url, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetExtension fetches the metadata of the extension's latest published
// version. Returns a *NotFoundError when the registry reports no match.
func (c *Client) GetExtension(ctx context.Context, id string) (*Extension, error) {
	url := c.endpoint(queryPath)
	c.logger.Debug("querying extension", "id", id, "url", url)

	var resp queryResponse
	if err := c.transport.PostJSON(ctx, url, queryRequest{ExtensionID: id}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Extensions) == 0 {
		return nil, &NotFoundError{ExtensionID: id, URL: url}
	}
	return &resp.Extensions[0], nil
}

// GetAllVersions fetches the metadata of every published version of an
// extension, in the order the registry returns them (newest first).
// Returns a *NotFoundError when the registry reports no match.
func (c *Client) GetAllVersions(ctx context.Context, id string) ([]Extension, error) {
	url := c.endpoint(queryPath)
	c.logger.Debug("querying all versions", "id", id, "url", url)

	var resp queryResponse
	if err := c.transport.PostJSON(ctx, url, queryRequest{ExtensionID: id, IncludeAllVersions: true}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Extensions) == 0 {
		return nil, &NotFoundError{ExtensionID: id, URL: url}
	}
	return resp.Extensions, nil
}

// FetchText retrieves url as raw text with no parsing. Used for resource
// URLs carried in extension metadata (manifest, readme, download).
func (c *Client) FetchText(ctx context.Context, url string) (string, error) {
	return c.transport.FetchText(ctx, url)
}
