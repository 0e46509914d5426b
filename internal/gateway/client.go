// Package gateway adapts local prompts into calls against the Gemini REST
// API and classifies the results into the error taxonomy of
// internal/errors. Every call is single-shot: no retries, no backoff, no
// response caching.
package gateway

import (
	"net/http"
	"strings"
	"time"

	"github.com/diogo/gemichat/internal/models"
)

const defaultTimeout = 120 * time.Second

// Client issues requests to the Gemini API. It is safe for concurrent use;
// all per-call state (API key, model, temperature) arrives via
// models.SessionConfig so one client serves every session.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL overrides the API base URL (used by tests).
func WithBaseURL(base string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(base, "/")
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient creates a new gateway client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    models.DefaultBaseURL,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}
