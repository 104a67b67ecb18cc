package signing

import (
	"fmt"
	"time"

	"fapimcp/pkg/core"
)

// Reserved parameter names owned by the builder.
const (
	ParamTimestamp  = "timestamp"
	ParamSignature  = "signature"
	ParamRecvWindow = "recvWindow"

	// HeaderAPIKey carries the public API key on every signed request.
	HeaderAPIKey = "X-MBX-APIKEY"
	// ContentTypeForm is set on requests whose payload travels in the body.
	ContentTypeForm = "application/x-www-form-urlencoded"
)

// Builder assembles signed requests. It is immutable after construction and
// safe for concurrent use.
type Builder struct {
	creds      core.Credentials
	now        func() time.Time
	recvWindow int64
	mode       func(core.EncodingMode) core.EncodingMode
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithClock replaces the wall clock used for the timestamp parameter.
func WithClock(now func() time.Time) BuilderOption {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// WithRecvWindow adds recvWindow (milliseconds) to every request when positive.
func WithRecvWindow(ms int64) BuilderOption {
	return func(b *Builder) {
		b.recvWindow = ms
	}
}

// WithModeResolver maps a tool's declared encoding to the one actually used.
func WithModeResolver(resolve func(core.EncodingMode) core.EncodingMode) BuilderOption {
	return func(b *Builder) {
		if resolve != nil {
			b.mode = resolve
		}
	}
}

// NewBuilder creates a Builder signing with creds. The credentials are copied.
func NewBuilder(creds *core.Credentials, opts ...BuilderOption) (*Builder, error) {
	if !creds.Complete() {
		return nil, core.NewConfigError(core.ErrCodeNoCredentials, core.ErrNoCredentials)
	}
	b := &Builder{
		creds: *creds,
		now:   time.Now,
		mode:  func(m core.EncodingMode) core.EncodingMode { return m },
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Build signs params for tool and returns the request to send.
// The caller's params are not modified.
func (b *Builder) Build(tool core.ToolSpec, params core.Params) (*core.Request, error) {
	for _, reserved := range []string{ParamTimestamp, ParamSignature} {
		if _, ok := params[reserved]; ok {
			return nil, core.NewValidationError(tool.Name, core.ErrCodeReservedParameter,
				fmt.Sprintf("%s is set by the server and must not be supplied", reserved))
		}
	}

	set := params.Clone()
	set[ParamTimestamp] = b.now().UnixMilli()
	if b.recvWindow > 0 && !set.Has(ParamRecvWindow) {
		set[ParamRecvWindow] = b.recvWindow
	}

	enc := EncoderFor(b.mode(tool.Encoding))
	pairs, err := enc.Pairs(set)
	if err != nil {
		return nil, core.NewValidationError(tool.Name, core.ErrCodeUnsupportedValue, err.Error())
	}

	signature := Sign(enc.Signable(pairs), b.creds.SecretKey)
	pairs = append(pairs, Pair{Key: ParamSignature, Value: signature})
	SortPairs(pairs)
	payload := enc.Encode(pairs)

	req := core.NewRequest(tool.Method, tool.Path).
		SetTool(tool.Name).
		SetHeader(HeaderAPIKey, b.creds.APIKey)
	if core.IsQueryMethod(tool.Method) {
		req.SetQuery(payload)
	} else {
		req.SetBody(payload).SetHeader("Content-Type", ContentTypeForm)
	}
	return req, nil
}
