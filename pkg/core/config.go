package core

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
)

// Environment variables read by LoadConfig.
const (
	EnvAPIKey     = "BINANCE_API_KEY"
	EnvSecretKey  = "BINANCE_SECRET_KEY"
	EnvBaseURL    = "BINANCE_FUTURES_BASE_URL"
	EnvTestnet    = "BINANCE_TESTNET"
	EnvRecvWindow = "BINANCE_RECV_WINDOW"
	EnvLogLevel   = "BINANCE_MCP_LOG_LEVEL"
	EnvEncoding   = "BINANCE_MCP_ENCODING"
)

// EncodingPerTool keeps each tool's declared EncodingMode.
const EncodingPerTool = "per-tool"

// Config contains all configuration options for the tool server.
type Config struct {
	// BaseURL overrides the production or testnet host when set.
	BaseURL     string       `json:"base_url" validate:"omitempty,url"`
	Testnet     bool         `json:"testnet"`
	Credentials *Credentials `json:"-"`

	// Timeout is the maximum duration for HTTP requests. Zero keeps the client default.
	Timeout time.Duration `json:"timeout" validate:"min=0"`
	// RecvWindow is added to every signed request when positive.
	RecvWindow int64 `json:"recv_window" validate:"min=0,max=60000"`
	// Encoding is "per-tool" or "strict"; strict forces one encoder for every tool.
	Encoding string `json:"encoding" validate:"oneof=per-tool strict"`

	// RateLimitRequests enables the local limiter when positive.
	RateLimitRequests int           `json:"rate_limit_requests" validate:"min=0"`
	RateLimitPeriod   time.Duration `json:"rate_limit_period" validate:"min=0"`

	LogLevel   string `json:"log_level" validate:"omitempty,oneof=debug info warn error"`
	ServerName string `json:"server_name" validate:"required"`
}

// DefaultConfig returns a Config with production defaults and no credentials.
func DefaultConfig() *Config {
	return &Config{
		Encoding:        EncodingPerTool,
		RateLimitPeriod: time.Minute,
		LogLevel:        "info",
		ServerName:      "binance-futures-mcp",
	}
}

var validate = validator.New()

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.RateLimitRequests > 0 && c.RateLimitPeriod <= 0 {
		return errors.New("RateLimitPeriod must be positive when the rate limit is enabled")
	}
	return nil
}

// RequireCredentials fails unless both API key and secret are configured.
func (c *Config) RequireCredentials() error {
	if c.Credentials.Complete() {
		return nil
	}
	var missing string
	switch {
	case c.Credentials == nil || c.Credentials.APIKey == "":
		missing = EnvAPIKey
	default:
		missing = EnvSecretKey
	}
	return NewConfigError(ErrCodeNoCredentials, fmt.Errorf("%w: %s is not set", ErrNoCredentials, missing))
}

// EncodingFor returns the mode a tool declared with mode is actually encoded with.
func (c *Config) EncodingFor(mode EncodingMode) EncodingMode {
	if c.Encoding == string(EncodingStrict) {
		return EncodingStrict
	}
	return mode
}

// WithCredentials sets the API credentials and returns the config for chaining.
func (c *Config) WithCredentials(creds *Credentials) *Config {
	c.Credentials = creds
	return c
}

// WithTestnet switches to the futures testnet and returns the config for chaining.
func (c *Config) WithTestnet(testnet bool) *Config {
	c.Testnet = testnet
	return c
}

// WithBaseURL overrides the API host and returns the config for chaining.
func (c *Config) WithBaseURL(url string) *Config {
	c.BaseURL = url
	return c
}

// WithRateLimit sets the local limiter parameters and returns the config for chaining.
func (c *Config) WithRateLimit(requests int, period time.Duration) *Config {
	c.RateLimitRequests = requests
	c.RateLimitPeriod = period
	return c
}

type fileConfig struct {
	BaseURL           string `toml:"base_url"`
	Testnet           *bool  `toml:"testnet"`
	Timeout           string `toml:"timeout"`
	RecvWindow        *int64 `toml:"recv_window"`
	Encoding          string `toml:"encoding"`
	RateLimitRequests *int   `toml:"rate_limit_requests"`
	RateLimitPeriod   string `toml:"rate_limit_period"`
	LogLevel          string `toml:"log_level"`
	ServerName        string `toml:"server_name"`
}

// LoadConfig builds the configuration from defaults, the optional TOML file at path,
// and environment overrides, then validates it. A missing file is not an error.
// Credentials are read from the environment only and are not checked here.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := cfg.applyFile(data); err != nil {
				return nil, NewConfigError(ErrCodeInvalidConfig, fmt.Errorf("parse config file %s: %w", path, err))
			}
		case !os.IsNotExist(err):
			return nil, NewConfigError(ErrCodeInvalidConfig, fmt.Errorf("read config file %s: %w", path, err))
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, NewConfigError(ErrCodeInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, NewConfigError(ErrCodeInvalidConfig, fmt.Errorf("config validation: %w", err))
	}

	return cfg, nil
}

func (c *Config) applyFile(data []byte) error {
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return err
	}

	if fc.BaseURL != "" {
		c.BaseURL = fc.BaseURL
	}
	if fc.Testnet != nil {
		c.Testnet = *fc.Testnet
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("timeout: %w", err)
		}
		c.Timeout = d
	}
	if fc.RecvWindow != nil {
		c.RecvWindow = *fc.RecvWindow
	}
	if fc.Encoding != "" {
		c.Encoding = fc.Encoding
	}
	if fc.RateLimitRequests != nil {
		c.RateLimitRequests = *fc.RateLimitRequests
	}
	if fc.RateLimitPeriod != "" {
		d, err := time.ParseDuration(fc.RateLimitPeriod)
		if err != nil {
			return fmt.Errorf("rate_limit_period: %w", err)
		}
		c.RateLimitPeriod = d
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.ServerName != "" {
		c.ServerName = fc.ServerName
	}
	return nil
}

func (c *Config) applyEnv() error {
	apiKey, secretKey := os.Getenv(EnvAPIKey), os.Getenv(EnvSecretKey)
	if apiKey != "" || secretKey != "" {
		c.Credentials = NewCredentials(apiKey, secretKey)
	}

	if v := os.Getenv(EnvBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvTestnet); v != "" {
		testnet, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTestnet, err)
		}
		c.Testnet = testnet
	}
	if v := os.Getenv(EnvRecvWindow); v != "" {
		window, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRecvWindow, err)
		}
		c.RecvWindow = window
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvEncoding); v != "" {
		c.Encoding = v
	}
	return nil
}
