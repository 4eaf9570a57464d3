package arena

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	DefaultBaseURL   = "https://api.are.na/v2"
	DefaultUserAgent = "arena-dl"
)

// Client talks to the public, unauthenticated part of the Are.na v2 API.
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.client = client
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
		client:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BlockURL(blockID string) string {
	return fmt.Sprintf("%s/blocks/%s", c.baseURL, url.PathEscape(blockID))
}

// GetBlock fetches the metadata of a single block.
// Errors wrap ErrRequest or ErrInvalidJSON.
func (c *Client) GetBlock(ctx context.Context, blockID string) (*Block, error) {
	resp, err := c.Open(ctx, c.BlockURL(blockID))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response for block %s: %w", ErrRequest, blockID, err)
	}
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: block %s: %w", ErrInvalidJSON, blockID, err)
	}
	return DecodeBlock(raw)
}

// Open performs a GET and returns the response with an unread body.
// Non-2xx statuses are returned as errors and the body is closed.
func (c *Client) Open(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create GET request for %s: %w", ErrRequest, rawURL, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to GET %s: %w", ErrRequest, rawURL, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: GET %s returned status %d", ErrRequest, rawURL, resp.StatusCode)
	}
	return resp, nil
}
