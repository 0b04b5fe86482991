// Package cloudinary is a minimal client for the Cloudinary Admin API,
// covering the folder and resource listing calls the gallery sync needs.
package cloudinary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.cloudinary.com/v1_1"

// Client calls the Cloudinary Admin API with basic auth.
type Client struct {
	baseURL    string
	cloudName  string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used in tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a Cloudinary Admin API client for one cloud.
func NewClient(cloudName, apiKey, apiSecret string, opts ...Option) *Client {
	c := &Client{
		baseURL:   defaultBaseURL,
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Folder is one folder in the media library.
type Folder struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Resource is one stored asset. Type is the delivery type ("upload",
// "private", ...) and ResourceType the asset kind ("image", "video", "raw").
type Resource struct {
	PublicID     string `json:"public_id"`
	AssetFolder  string `json:"asset_folder"`
	Format       string `json:"format"`
	Type         string `json:"type"`
	ResourceType string `json:"resource_type"`
	SecureURL    string `json:"secure_url"`
	CreatedAt    string `json:"created_at"`
}

// ResourcePage is one page of a resource listing. NextCursor is empty on
// the last page.
type ResourcePage struct {
	Resources  []Resource `json:"resources"`
	NextCursor string     `json:"next_cursor"`
}

type foldersResponse struct {
	Folders []Folder `json:"folders"`
}

// SubFolders lists the direct subfolders of the given folder path.
// An empty path lists the root folders.
func (c *Client) SubFolders(ctx context.Context, path string) ([]Folder, error) {
	endpoint := c.endpoint("folders")
	if path != "" {
		endpoint += "/" + url.PathEscape(path)
	}

	var out foldersResponse
	if err := c.get(ctx, endpoint, &out); err != nil {
		return nil, fmt.Errorf("failed to list subfolders of %q: %w", path, err)
	}
	return out.Folders, nil
}

// ResourcesByFolder lists one page of assets in the given asset folder.
// Pass the previous page's NextCursor to continue; an empty cursor starts
// from the beginning.
func (c *Client) ResourcesByFolder(ctx context.Context, folder string, maxResults int, cursor string) (*ResourcePage, error) {
	query := url.Values{}
	query.Set("asset_folder", folder)
	query.Set("max_results", strconv.Itoa(maxResults))
	if cursor != "" {
		query.Set("next_cursor", cursor)
	}
	endpoint := c.endpoint("resources/by_asset_folder") + "?" + query.Encode()

	var out ResourcePage
	if err := c.get(ctx, endpoint, &out); err != nil {
		return nil, fmt.Errorf("failed to list resources in folder %q: %w", folder, err)
	}
	return &out, nil
}

func (c *Client) endpoint(path string) string {
	return fmt.Sprintf("%s/%s/%s", c.baseURL, c.cloudName, path)
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.SetBasicAuth(c.apiKey, c.apiSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
