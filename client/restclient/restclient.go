// Package restclient is the client-side gateway to the REST API. Every
// transport failure or non-2xx response is converted to a domain *Error
// before it reaches the caller; callers never interpret status codes.
package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds each exchange. There is no retry: one request, one
// response or one error.
const DefaultTimeout = 10 * time.Second

// Client issues requests against the API base URL.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client, used by tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout overrides the per-exchange timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// New creates a client for the API rooted at baseURL (e.g.
// "http://localhost:3000").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    baseURL,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Users returns the gateway for the users resource.
func (c *Client) Users() *UsersService {
	return &UsersService{client: c}
}

// Tasks returns the gateway for the tasks resource.
func (c *Client) Tasks() *TasksService {
	return &TasksService{client: c}
}

// do executes one exchange and decodes the 2xx response into target. Any
// other outcome is returned as a *Error.
func (c *Client) do(ctx context.Context, method, path string, body any, target any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return transportError(fmt.Errorf("encode request body: %w", err))
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return transportError(fmt.Errorf("create request: %w", err))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp)
	}

	if target == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return transportError(fmt.Errorf("decode response body: %w", err))
	}

	return nil
}
