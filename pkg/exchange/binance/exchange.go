package binance

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"

	"fapimcp/internal/ratelimit"
	"fapimcp/internal/transport"
	"fapimcp/pkg/core"
	"fapimcp/pkg/signing"
)

const (
	ProductionURL = "https://fapi.binance.com"
	TestnetURL    = "https://testnet.binancefuture.com"
)

// Client executes futures tools: it signs each call, sends it once and
// decodes the JSON answer. It holds no per-call state and is safe for
// concurrent use.
type Client struct {
	config     *core.Config
	builder    *signing.Builder
	httpClient *transport.Client
	limiter    *ratelimit.RateLimiter
	logger     zerolog.Logger
}

var _ core.Executor = (*Client)(nil)

// Option is a functional option for configuring the Client.
type Option func(*Options)

// Options holds configuration options for the Client.
type Options struct {
	Logger    zerolog.Logger
	Clock     func() time.Time
	UserAgent string
}

// WithLogger returns an option that sets the logger for the client.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithClock returns an option that replaces the clock used for request timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		o.Clock = now
	}
}

// WithUserAgent returns an option that sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *Options) {
		o.UserAgent = ua
	}
}

// decoder keeps numbers as json.Number so large IDs and prices survive unchanged.
var decoder = sonic.Config{UseNumber: true}.Froze()

// New creates a Client from config. Credentials must be complete.
func New(config *core.Config, opts ...Option) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	if err := config.RequireCredentials(); err != nil {
		return nil, err
	}

	options := &Options{
		Logger: zerolog.Nop(),
		Clock:  time.Now,
	}
	for _, opt := range opts {
		opt(options)
	}

	builder, err := signing.NewBuilder(config.Credentials,
		signing.WithClock(options.Clock),
		signing.WithRecvWindow(config.RecvWindow),
		signing.WithModeResolver(config.EncodingFor),
	)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}

	httpClient, err := transport.NewClient(&transport.Config{
		BaseURL:   BaseURL(config),
		Timeout:   config.Timeout,
		UserAgent: options.UserAgent,
	}, transport.WithLogger(options.Logger))
	if err != nil {
		return nil, fmt.Errorf("create http client: %w", err)
	}

	var rl *ratelimit.RateLimiter
	if config.RateLimitRequests > 0 {
		rl = ratelimit.New(config.RateLimitRequests, config.RateLimitPeriod)
	}

	options.Logger.Info().
		Str("base_url", BaseURL(config)).
		Bool("testnet", config.Testnet).
		Object("credentials", config.Credentials).
		Str("encoding", config.Encoding).
		Int64("recv_window", config.RecvWindow).
		Bool("rate_limited", rl != nil).
		Msg("futures client ready")

	return &Client{
		config:     config,
		builder:    builder,
		httpClient: httpClient,
		limiter:    rl,
		logger:     options.Logger,
	}, nil
}

// BaseURL returns the API host for config: the explicit override, else testnet or production.
func BaseURL(config *core.Config) string {
	switch {
	case config.BaseURL != "":
		return config.BaseURL
	case config.Testnet:
		return TestnetURL
	default:
		return ProductionURL
	}
}

// Close releases resources used by the client.
func (c *Client) Close() error {
	if c.limiter != nil {
		m := c.limiter.Metrics()
		c.logger.Debug().
			Int64("allowed", m.AllowedRequests).
			Int64("denied", m.DeniedRequests).
			Msg("local rate limiter totals")
	}
	return c.httpClient.Close()
}

// Execute signs params for tool, sends the request and returns the decoded JSON body.
// Remote rejections become REMOTE_API errors carrying the raw payload;
// network failures become TRANSPORT errors. Nothing is retried.
func (c *Client) Execute(ctx context.Context, tool core.ToolSpec, params core.Params) (any, error) {
	if c.limiter != nil && !c.limiter.Allow() {
		return nil, core.NewRateLimitError(tool.Name)
	}

	req, err := c.builder.Build(tool, params)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, core.NewTransportError(tool.Name, err)
	}

	if resp.IsError() {
		return nil, remoteError(tool.Name, resp)
	}

	return decodeBody(resp.Body)
}

type apiError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

func remoteError(tool string, resp *transport.Response) *core.Error {
	payload := string(resp.Body)
	if payload == "" {
		payload = resp.Status
	}

	code := string(core.ErrCodeRemoteAPI)
	var e apiError
	if err := sonic.Unmarshal(resp.Body, &e); err == nil && e.Code != 0 {
		code = strconv.Itoa(e.Code)
	}
	return core.NewRemoteError(tool, resp.StatusCode, code, payload)
}

func decodeBody(body []byte) (any, error) {
	if len(body) == 0 {
		return map[string]any{}, nil
	}
	var v any
	if err := decoder.Unmarshal(body, &v); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return v, nil
}
