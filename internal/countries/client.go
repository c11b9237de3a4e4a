// Package countries provides the HTTP client for the remote country
// reference dataset. The endpoint returns the full unfiltered dataset; no
// query parameter is sent upstream.
package countries

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fxpick/internal/domain"
)

// ClientError represents an error from the dataset client.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeConnection
	ErrTypeStatus
	ErrTypeDecode
)

// ClientConfig holds configuration options for the dataset client.
type ClientConfig struct {
	// Endpoint is the full dataset URL
	Endpoint string

	// Timeout for a single fetch (default: 10s)
	Timeout time.Duration
}

// DefaultClientConfig returns the default client configuration.
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Endpoint: "https://restcountries.com/v3.1/all?fields=name,flag,currencies",
		Timeout:  10 * time.Second,
	}
}

// Client fetches the country dataset over HTTP. Safe for concurrent use.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
}

// NewClient creates a new dataset client.
func NewClient(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultClientConfig()
	}
	if config.Endpoint == "" {
		config.Endpoint = DefaultClientConfig().Endpoint
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultClientConfig().Timeout
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// FetchAll fetches the complete country dataset in record order.
func (c *Client) FetchAll(ctx context.Context) ([]domain.Country, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.Endpoint, nil)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeUnknown, Message: "failed to build request", Cause: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeConnection, Message: "dataset request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ClientError{
			Type:    ErrTypeStatus,
			Message: fmt.Sprintf("dataset endpoint returned %d", resp.StatusCode),
		}
	}

	var records []domain.Country
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, &ClientError{Type: ErrTypeDecode, Message: "failed to decode dataset", Cause: err}
	}

	return records, nil
}
