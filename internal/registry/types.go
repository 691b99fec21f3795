package registry

import "context"

// Config holds the immutable settings for a Client. APIVersion is the host
// application version extensions must support; BaseURL is the registry root.
type Config struct {
	APIVersion string
	BaseURL    string
}

// Transport performs the HTTP round trips the client consumes. Implementations
// own all connection, timeout, and retry policy; the client performs none.
type Transport interface {
	// FetchText issues a GET and returns the response body as raw text.
	FetchText(ctx context.Context, url string) (string, error)
	// FetchJSON issues a GET with an Accept: application/json header and
	// decodes the response body into into.
	FetchJSON(ctx context.Context, url string, into any) error
	// PostJSON serializes body as JSON, issues a POST with JSON content-type
	// and accept headers, and decodes the response body into into.
	PostJSON(ctx context.Context, url string, body, into any) error
}

// SearchParams holds the optional filters for a registry search. Zero-valued
// fields are treated as absent and omitted from the request.
type SearchParams struct {
	Query              string
	Category           string
	Size               int
	Offset             int
	SortOrder          string // "asc" or "desc"
	SortBy             string // e.g., "relevance", "timestamp", "downloadCount"
	IncludeAllVersions bool
}

// SearchResult is the parsed api/-/search response, returned unmodified.
type SearchResult struct {
	Offset     int           `json:"offset"`
	TotalSize  int           `json:"totalSize"`
	Extensions []SearchEntry `json:"extensions"`
}

// SearchEntry is one extension in a search listing.
type SearchEntry struct {
	URL           string            `json:"url,omitempty"`
	Files         map[string]string `json:"files,omitempty"`
	Namespace     string            `json:"namespace"`
	Name          string            `json:"name"`
	Version       string            `json:"version,omitempty"`
	Timestamp     string            `json:"timestamp,omitempty"`
	AllVersions   []VersionEntry    `json:"allVersions,omitempty"`
	DisplayName   string            `json:"displayName,omitempty"`
	Description   string            `json:"description,omitempty"`
	AverageRating float64           `json:"averageRating,omitempty"`
	DownloadCount int               `json:"downloadCount,omitempty"`
}

// Extension is the full metadata for one extension version as returned by
// the api/-/query endpoint.
type Extension struct {
	NamespaceURL  string            `json:"namespaceUrl,omitempty"`
	ReviewsURL    string            `json:"reviewsUrl,omitempty"`
	Files         map[string]string `json:"files,omitempty"`
	Namespace     string            `json:"namespace"`
	Name          string            `json:"name"`
	Version       string            `json:"version"`
	PreRelease    bool              `json:"preRelease,omitempty"`
	Engines       map[string]string `json:"engines,omitempty"`
	Timestamp     string            `json:"timestamp,omitempty"`
	DisplayName   string            `json:"displayName,omitempty"`
	Description   string            `json:"description,omitempty"`
	Categories    []string          `json:"categories,omitempty"`
	Tags          []string          `json:"tags,omitempty"`
	License       string            `json:"license,omitempty"`
	Homepage      string            `json:"homepage,omitempty"`
	Repository    string            `json:"repository,omitempty"`
	AverageRating float64           `json:"averageRating,omitempty"`
	ReviewCount   int               `json:"reviewCount,omitempty"`
	DownloadCount int               `json:"downloadCount,omitempty"`
}

// ID returns the canonical "namespace.name" extension identifier.
func (e *Extension) ID() string {
	return e.Namespace + "." + e.Name
}

// VersionEntry is one entry in an all-versions listing. It carries only the
// fields needed for compatibility resolution and download.
type VersionEntry struct {
	URL     string            `json:"url,omitempty"`
	Version string            `json:"version,omitempty"`
	Engines map[string]string `json:"engines,omitempty"`
}

// queryRequest is the body of an api/-/query POST.
type queryRequest struct {
	ExtensionID        string `json:"extensionId"`
	IncludeAllVersions bool   `json:"includeAllVersions,omitempty"`
}

// queryResponse is the envelope of an api/-/query response.
type queryResponse struct {
	Extensions []Extension `json:"extensions"`
}
