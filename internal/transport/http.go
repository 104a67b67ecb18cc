// Package transport sends signed requests to the trading API.
package transport

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"resty.dev/v3"

	"fapimcp/pkg/core"
)

// Config holds the HTTP client settings.
type Config struct {
	BaseURL string `validate:"required,url"`
	// Timeout bounds each request. Zero keeps the client default.
	Timeout   time.Duration `validate:"min=0"`
	UserAgent string
}

// Client wraps a resty client that sends pre-encoded payloads verbatim.
// Requests are never retried.
type Client struct {
	client *resty.Client
	logger zerolog.Logger
	mu     sync.RWMutex
	closed bool
}

// Response is the raw HTTP response.
type Response struct {
	// StatusCode is the HTTP status code returned by the server.
	StatusCode int
	// Status is the status line, e.g. "400 Bad Request".
	Status string
	// Body contains the raw response body bytes.
	Body []byte
	// Headers contains the first value of each response header.
	Headers map[string]string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates an HTTP client for config.
func NewClient(config *Config, opts ...Option) (*Client, error) {
	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid transport config: %w", err)
	}

	client := resty.New()
	client.SetBaseURL(config.BaseURL)
	client.SetRetryCount(0)
	if config.Timeout > 0 {
		client.SetTimeout(config.Timeout)
	}
	if config.UserAgent != "" {
		client.SetHeader("User-Agent", config.UserAgent)
	}

	c := &Client{
		client: client,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Do sends req. The query and body are written exactly as encoded, so the
// bytes on the wire are the bytes that were signed. A non-2xx status is not
// an error here; callers inspect the Response.
func (c *Client) Do(ctx context.Context, req *core.Request) (*Response, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return nil, fmt.Errorf("client is closed")
	}

	switch req.Method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return nil, fmt.Errorf("unsupported http method: %s", req.Method)
	}

	r := c.client.R().SetContext(ctx)
	for k, v := range req.Headers {
		r.SetHeader(k, v)
	}
	if req.Body != "" {
		r.SetBody(req.Body)
	}

	start := time.Now()
	resp, err := r.Execute(req.Method, req.URL())
	if err != nil {
		c.logger.Error().Err(err).
			Str("tool", req.Tool).
			Str("method", req.Method).
			Str("path", req.Path).
			Msg("http request failed")
		return nil, fmt.Errorf("http request: %w", err)
	}

	body := resp.Bytes()
	c.logger.Debug().
		Str("tool", req.Tool).
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", resp.StatusCode()).
		Int("size", len(body)).
		Dur("elapsed", time.Since(start)).
		Msg("http response")

	headers := make(map[string]string, len(resp.Header()))
	for k, v := range resp.Header() {
		if len(v) > 0 {
			headers[k] = v[0]
		}
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Body:       body,
		Headers:    headers,
	}, nil
}

// Close releases idle connections. Further calls to Do fail.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.client.Close()
}

// IsSuccess returns true if the response status code indicates success (2xx).
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the response status code indicates an error (4xx or 5xx).
func (r *Response) IsError() bool {
	return r.StatusCode >= http.StatusBadRequest
}
