// Package posts fetches a remote JSON post listing and persists it as
// CSV. It is a standalone collaborator of the service with no
// dependency on the auth core.
package posts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

// Post is one entry of the remote listing. Only the persisted columns
// are decoded.
type Post struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a posts client. An empty baseURL falls back to the
// public listing endpoint.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves the full post listing.
func (c *Client) Fetch(ctx context.Context) ([]Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/posts", nil)
	if err != nil {
		return nil, fmt.Errorf("posts: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("posts: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("posts: unexpected status %d", resp.StatusCode)
	}

	var out []Post
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("posts: decode listing: %w", err)
	}
	return out, nil
}
