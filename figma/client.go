package figma

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the production Figma REST API endpoint.
const DefaultBaseURL = "https://api.figma.com"

const defaultTimeout = 30 * time.Second

// ErrFetchFailed is the single failure condition for API access. Auth,
// not-found, rate-limit, and transport errors all wrap it; callers are
// not expected to branch on HTTP status codes.
var ErrFetchFailed = errors.New("figma: fetch failed")

// Config configures a Client. Token is required and always explicit —
// environment lookup belongs to the caller, not this package.
type Config struct {
	// Token is the personal access token sent as X-Figma-Token.
	Token string
	// BaseURL overrides the API endpoint (useful for tests).
	BaseURL string
	// HTTPClient supplies a custom transport. Its transport is wrapped
	// with the auth header; a default client is used when nil.
	HTTPClient *http.Client
	// Logger receives debug-level request logs. Defaults to slog.Default.
	Logger *slog.Logger
}

// Client is a thin authenticated GET wrapper over the Figma v1 API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates a Client from cfg. It fails when the token is empty.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, errors.New("figma: access token is required")
	}

	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	base := http.DefaultTransport
	timeout := defaultTimeout
	if cfg.HTTPClient != nil {
		if cfg.HTTPClient.Transport != nil {
			base = cfg.HTTPClient.Transport
		}
		if cfg.HTTPClient.Timeout != 0 {
			timeout = cfg.HTTPClient.Timeout
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: timeout,
			Transport: &headerRoundTripper{
				base:    base,
				headers: map[string]string{"X-Figma-Token": cfg.Token},
			},
		},
		logger: logger,
	}, nil
}

// FileOptions narrows a GetFile request.
type FileOptions struct {
	// Depth limits document tree traversal; zero means unlimited.
	Depth int
	// IDs restricts the returned tree to the listed nodes and their
	// ancestors.
	IDs []string
}

func (o *FileOptions) query() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}
	if o.Depth > 0 {
		values.Set("depth", strconv.Itoa(o.Depth))
	}
	if len(o.IDs) > 0 {
		values.Set("ids", strings.Join(o.IDs, ","))
	}
	return values
}

// File is the decoded response of GET /v1/files/:key.
type File struct {
	Name         string                     `json:"name"`
	LastModified string                     `json:"lastModified"`
	Version      string                     `json:"version"`
	Document     *Node                      `json:"document"`
	Components   map[string]json.RawMessage `json:"components"`
	Styles       map[string]json.RawMessage `json:"styles"`
}

// GetFile fetches a file's document tree with metadata.
func (c *Client) GetFile(ctx context.Context, fileKey string, opts *FileOptions) (*File, error) {
	var file File
	if err := c.get(ctx, "/v1/files/"+fileKey, opts.query(), &file); err != nil {
		return nil, err
	}
	return &file, nil
}

// GetFileRaw fetches a file and returns the undecoded response body, for
// callers that need the complete payload rather than the modeled subset.
func (c *Client) GetFileRaw(ctx context.Context, fileKey string, opts *FileOptions) (json.RawMessage, error) {
	return c.getRaw(ctx, "/v1/files/"+fileKey, opts.query())
}

// NodeEntry is one entry of a GetFileNodes response.
type NodeEntry struct {
	Document *Node `json:"document"`
}

// FileNodes is the decoded response of GET /v1/files/:key/nodes.
type FileNodes struct {
	Name  string                `json:"name"`
	Nodes map[string]*NodeEntry `json:"nodes"`
}

// GetFileNodes fetches specific nodes by ID. Unknown IDs come back as
// nil entries in the Nodes map.
func (c *Client) GetFileNodes(ctx context.Context, fileKey string, nodeIDs []string) (*FileNodes, error) {
	values := url.Values{}
	values.Set("ids", strings.Join(nodeIDs, ","))

	var nodes FileNodes
	if err := c.get(ctx, "/v1/files/"+fileKey+"/nodes", values, &nodes); err != nil {
		return nil, err
	}
	return &nodes, nil
}

// ImageFormat enumerates the render output formats the API accepts.
type ImageFormat string

const (
	FormatPNG ImageFormat = "png"
	FormatJPG ImageFormat = "jpg"
	FormatSVG ImageFormat = "svg"
	FormatPDF ImageFormat = "pdf"
)

// Valid reports whether f is a supported render format.
func (f ImageFormat) Valid() bool {
	switch f {
	case FormatPNG, FormatJPG, FormatSVG, FormatPDF:
		return true
	}
	return false
}

// ImageOptions configures a render request.
type ImageOptions struct {
	// Format defaults to PNG when empty.
	Format ImageFormat
	// Scale is the render scale factor (0.01 to 4); zero means the API
	// default of 1.
	Scale float64
}

// Images is the decoded response of GET /v1/images/:key. A node that
// failed to render maps to an empty URL.
type Images struct {
	Err    string            `json:"err,omitempty"`
	Images map[string]string `json:"images"`
}

// GetImages renders nodes as images and returns per-node download URLs.
func (c *Client) GetImages(ctx context.Context, fileKey string, nodeIDs []string, opts *ImageOptions) (*Images, error) {
	format := FormatPNG
	scale := 0.0
	if opts != nil {
		if opts.Format != "" {
			format = opts.Format
		}
		scale = opts.Scale
	}
	if !format.Valid() {
		return nil, fmt.Errorf("%w: unsupported image format %q", ErrFetchFailed, format)
	}

	values := url.Values{}
	values.Set("ids", strings.Join(nodeIDs, ","))
	values.Set("format", string(format))
	if scale != 0 {
		values.Set("scale", strconv.FormatFloat(scale, 'f', -1, 64))
	}

	var images Images
	if err := c.get(ctx, "/v1/images/"+fileKey, values, &images); err != nil {
		return nil, err
	}
	return &images, nil
}

// GetLocalVariables fetches design variables (Enterprise plans only).
func (c *Client) GetLocalVariables(ctx context.Context, fileKey string) (json.RawMessage, error) {
	return c.getRaw(ctx, "/v1/files/"+fileKey+"/variables/local", nil)
}

// GetFileStyles fetches published style metadata.
func (c *Client) GetFileStyles(ctx context.Context, fileKey string) (json.RawMessage, error) {
	return c.getRaw(ctx, "/v1/files/"+fileKey+"/styles", nil)
}

// GetComments fetches all comments on a file.
func (c *Client) GetComments(ctx context.Context, fileKey string) (json.RawMessage, error) {
	return c.getRaw(ctx, "/v1/files/"+fileKey+"/comments", nil)
}

// GetTeamProjects lists projects in a team.
func (c *Client) GetTeamProjects(ctx context.Context, teamID string) (json.RawMessage, error) {
	return c.getRaw(ctx, "/v1/teams/"+teamID+"/projects", nil)
}

// GetProjectFiles lists files in a project.
func (c *Client) GetProjectFiles(ctx context.Context, projectID string) (json.RawMessage, error) {
	return c.getRaw(ctx, "/v1/projects/"+projectID+"/files", nil)
}

// GetComponents fetches published component metadata.
func (c *Client) GetComponents(ctx context.Context, fileKey string) (json.RawMessage, error) {
	return c.getRaw(ctx, "/v1/files/"+fileKey+"/components", nil)
}

// GetComponentSets fetches published component sets with variant info.
func (c *Client) GetComponentSets(ctx context.Context, fileKey string) (json.RawMessage, error) {
	return c.getRaw(ctx, "/v1/files/"+fileKey+"/component_sets", nil)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	body, err := c.getRaw(ctx, path, query)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decoding %s: %v", ErrFetchFailed, path, err)
	}
	return nil
}

func (c *Client) getRaw(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	c.logger.DebugContext(ctx, "figma api request", "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned status %d", ErrFetchFailed, path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrFetchFailed, path, err)
	}
	return body, nil
}

// headerRoundTripper injects static headers into every request without
// overriding headers the caller already set.
type headerRoundTripper struct {
	base    http.RoundTripper
	headers map[string]string
}

func (h *headerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	base := h.base
	if base == nil {
		base = http.DefaultTransport
	}
	for key, value := range h.headers {
		if req.Header.Get(key) == "" {
			req.Header.Set(key, value)
		}
	}
	return base.RoundTrip(req)
}
