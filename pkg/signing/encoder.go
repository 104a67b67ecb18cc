package signing

import (
	"net/url"
	"strings"

	"fapimcp/pkg/core"
)

// Encoder turns a parameter set into the string that is signed and the string
// that is transmitted. One encoder builds both, so the two always agree once
// the transmitted form is unescaped.
type Encoder interface {
	Mode() core.EncodingMode
	// Pairs selects and orders the parameters this encoder serializes.
	Pairs(params core.Params) ([]Pair, error)
	// Signable returns the unescaped signing input.
	Signable(pairs []Pair) string
	// Encode returns the escaped wire payload.
	Encode(pairs []Pair) string
}

// EncoderFor returns the encoder for mode. Unknown modes fall back to strict.
func EncoderFor(mode core.EncodingMode) Encoder {
	if mode == core.EncodingLenient {
		return lenientEncoder{}
	}
	return strictEncoder{}
}

type strictEncoder struct{}

func (strictEncoder) Mode() core.EncodingMode { return core.EncodingStrict }

func (strictEncoder) Pairs(params core.Params) ([]Pair, error) {
	return Pairs(params, false)
}

func (strictEncoder) Signable(pairs []Pair) string {
	return Canonical(pairs)
}

func (strictEncoder) Encode(pairs []Pair) string {
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(escape(p.Key))
		b.WriteByte('=')
		b.WriteString(escape(p.Value))
	}
	return b.String()
}

// escape percent-encodes s per RFC 3986, with spaces as %20.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// lenientEncoder keeps nil parameters as "key=" and hands the wire form to
// url.Values. Both behaviors are relied on by operations signed this way.
type lenientEncoder struct{}

func (lenientEncoder) Mode() core.EncodingMode { return core.EncodingLenient }

func (lenientEncoder) Pairs(params core.Params) ([]Pair, error) {
	return Pairs(params, true)
}

func (lenientEncoder) Signable(pairs []Pair) string {
	return Canonical(pairs)
}

func (lenientEncoder) Encode(pairs []Pair) string {
	values := make(url.Values, len(pairs))
	for _, p := range pairs {
		values.Add(p.Key, p.Value)
	}
	return values.Encode()
}

// Decode reverses an encoded payload into its unescaped pairs, in wire order.
// It is the inverse used to check that a payload agrees with its signature input.
func Decode(payload string) ([]Pair, error) {
	if payload == "" {
		return nil, nil
	}
	parts := strings.Split(payload, "&")
	pairs := make([]Pair, 0, len(parts))
	for _, part := range parts {
		k, v, _ := strings.Cut(part, "=")
		key, err := url.QueryUnescape(k)
		if err != nil {
			return nil, err
		}
		value, err := url.QueryUnescape(v)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, Pair{Key: key, Value: value})
	}
	return pairs, nil
}
