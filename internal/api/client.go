// Package api implements the Gemini generativelanguage API client.
package api

import (
	"fmt"
	"sync"
	"time"

	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"

	"github.com/diogo/promptrelay/internal/config"
	"github.com/diogo/promptrelay/internal/models"
)

// Client is the main client for the Gemini generativelanguage API
type Client struct {
	httpClient tls_client.HttpClient
	creds      *config.Credentials
	model      models.Model
	timeout    time.Duration
	mu         sync.RWMutex
	ready      bool
	closed     bool
}

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithModel sets the default model for the client
func WithModel(model models.Model) ClientOption {
	return func(c *Client) {
		c.model = model
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client (used by tests)
func WithHTTPClient(httpClient tls_client.HttpClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new Client bound to the given credentials
func NewClient(creds *config.Credentials, opts ...ClientOption) (*Client, error) {
	// Validate credentials
	if err := config.ValidateCredentials(creds); err != nil {
		return nil, err
	}

	client := &Client{
		creds:   creds,
		model:   models.DefaultModel,
		timeout: 300 * time.Second,
	}

	// Apply options
	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		options := []tls_client.HttpClientOption{
			tls_client.WithTimeoutSeconds(int(client.timeout / time.Second)),
			tls_client.WithClientProfile(profiles.Chrome_120),
			tls_client.WithNotFollowRedirects(),
		}

		httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		client.httpClient = httpClient
	}

	return client, nil
}

// Init marks the client ready. With API key auth there is no session to
// establish; the key itself is validated by the service on first use.
func (c *Client) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return fmt.Errorf("client is closed")
	}

	if err := config.ValidateCredentials(c.creds); err != nil {
		return err
	}

	c.ready = true
	return nil
}

// Close shuts down the client
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.closed = true
	c.ready = false

	if c.httpClient != nil {
		c.httpClient.CloseIdleConnections()
	}
}

// GetAPIKey returns the API key in use
func (c *Client) GetAPIKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.creds.APIKey
}

// GetModel returns the default model
func (c *Client) GetModel() models.Model {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.model
}

// SetModel sets the default model
func (c *Client) SetModel(model models.Model) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.model = model
}

// IsClosed returns whether the client is closed
func (c *Client) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}
