package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents the category of a tool failure.
type ErrorType int

// Error type constants categorize failures for the caller.
const (
	// ErrorTypeUnknown indicates an unclassified error.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeConfiguration indicates missing or invalid startup configuration.
	ErrorTypeConfiguration
	// ErrorTypeValidation indicates the call was rejected before any network request.
	ErrorTypeValidation
	// ErrorTypeRemoteAPI indicates the trading API answered with an error payload.
	ErrorTypeRemoteAPI
	// ErrorTypeTransport indicates the request never produced a response.
	ErrorTypeTransport
	// ErrorTypeRateLimit indicates the local request limiter denied the call.
	ErrorTypeRateLimit
)

// String returns the string representation of the error type.
func (t ErrorType) String() string {
	return [...]string{
		"UNKNOWN",
		"CONFIGURATION",
		"VALIDATION",
		"REMOTE_API",
		"TRANSPORT",
		"RATE_LIMIT",
	}[t]
}

// Sentinel errors for common error conditions.
var (
	// ErrNoCredentials is returned when the API key or secret is not configured.
	ErrNoCredentials = errors.New("no credentials configured")
	// ErrUnknownOperation is returned when a tool name matches no registered operation.
	ErrUnknownOperation = errors.New("unknown operation")
)

// Error is the structured failure returned to tool callers.
type Error struct {
	// Type categorizes the error for programmatic handling.
	Type ErrorType `json:"type"`
	// Tool is the tool that failed, when known.
	Tool string `json:"tool,omitempty"`
	// StatusCode is the HTTP status code of a remote rejection.
	StatusCode int `json:"status_code,omitempty"`
	// Code is a local ErrorCode or, for remote rejections, the API's numeric code.
	Code string `json:"code,omitempty"`
	// Message is the human-readable description. Remote rejections carry the raw payload.
	Message string `json:"message"`
	// Violations lists individual argument problems for validation errors.
	Violations []string `json:"violations,omitempty"`

	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	if e.Tool != "" {
		fmt.Fprintf(&b, "[%s] ", e.Tool)
	}
	b.WriteString(e.Type.String())
	switch {
	case e.StatusCode != 0 && e.Code != "":
		fmt.Fprintf(&b, " (%d/%s)", e.StatusCode, e.Code)
	case e.StatusCode != 0:
		fmt.Fprintf(&b, " (%d)", e.StatusCode)
	case e.Code != "":
		fmt.Fprintf(&b, " (%s)", e.Code)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	if len(e.Violations) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(e.Violations, "; "))
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets a local error code and returns the error for chaining.
func (e *Error) WithCode(code ErrorCode) *Error {
	e.Code = string(code)
	return e
}

// NewValidationError creates a validation failure for tool.
func NewValidationError(tool string, code ErrorCode, message string, violations ...string) *Error {
	return &Error{
		Type:       ErrorTypeValidation,
		Tool:       tool,
		Code:       string(code),
		Message:    message,
		Violations: violations,
	}
}

// NewUnknownOperationError reports a tool name with no registered operation.
func NewUnknownOperationError(tool string) *Error {
	return &Error{
		Type:    ErrorTypeValidation,
		Tool:    tool,
		Code:    string(ErrCodeUnknownOperation),
		Message: fmt.Sprintf("unknown operation %q", tool),
		cause:   ErrUnknownOperation,
	}
}

// NewRemoteError wraps an error payload returned by the trading API.
// code is the API's own error code, empty when the payload could not be parsed.
func NewRemoteError(tool string, statusCode int, code, payload string) *Error {
	return &Error{
		Type:       ErrorTypeRemoteAPI,
		Tool:       tool,
		StatusCode: statusCode,
		Code:       code,
		Message:    payload,
	}
}

// NewTransportError wraps a failure that prevented any response from arriving.
func NewTransportError(tool string, err error) *Error {
	return &Error{
		Type:    ErrorTypeTransport,
		Tool:    tool,
		Code:    string(ErrCodeTransport),
		Message: err.Error(),
		cause:   err,
	}
}

// NewConfigError wraps a startup configuration failure.
func NewConfigError(code ErrorCode, err error) *Error {
	return &Error{
		Type:    ErrorTypeConfiguration,
		Code:    string(code),
		Message: err.Error(),
		cause:   err,
	}
}

// NewRateLimitError reports a call denied by the local limiter.
func NewRateLimitError(tool string) *Error {
	return &Error{
		Type:    ErrorTypeRateLimit,
		Tool:    tool,
		Code:    string(ErrCodeLocalRateLimit),
		Message: "local request limit exceeded",
	}
}

func hasType(err error, t ErrorType) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// IsValidationError returns true if the call was rejected before reaching the network.
func IsValidationError(err error) bool {
	return hasType(err, ErrorTypeValidation)
}

// IsRemoteError returns true if the trading API rejected the request.
func IsRemoteError(err error) bool {
	return hasType(err, ErrorTypeRemoteAPI)
}

// IsTransportError returns true if the request failed without a response.
func IsTransportError(err error) bool {
	return hasType(err, ErrorTypeTransport)
}

// IsConfigError returns true for startup configuration failures.
func IsConfigError(err error) bool {
	return hasType(err, ErrorTypeConfiguration)
}
