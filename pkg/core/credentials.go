package core

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Credentials holds the Binance API key pair.
// The API key travels as a request header; the secret only keys the HMAC.
type Credentials struct {
	// APIKey is the public API key identifier.
	APIKey string `json:"-"`
	// SecretKey is the private key used for signing requests. It is never transmitted.
	SecretKey string `json:"-"`
}

// NewCredentials trims surrounding whitespace, which would otherwise corrupt every signature.
func NewCredentials(apiKey, secretKey string) *Credentials {
	return &Credentials{
		APIKey:    strings.TrimSpace(apiKey),
		SecretKey: strings.TrimSpace(secretKey),
	}
}

// Complete reports whether both halves of the key pair are present.
func (c *Credentials) Complete() bool {
	return c != nil && c.APIKey != "" && c.SecretKey != ""
}

// String masks both keys so credentials never leak through %v.
func (c *Credentials) String() string {
	if c == nil {
		return "Credentials{}"
	}
	return fmt.Sprintf("Credentials{APIKey:%s, SecretKey:****}", maskKey(c.APIKey))
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler with masked values.
func (c *Credentials) MarshalZerologObject(e *zerolog.Event) {
	if c == nil {
		return
	}
	e.Str("api_key", maskKey(c.APIKey)).Bool("secret_set", c.SecretKey != "")
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}
