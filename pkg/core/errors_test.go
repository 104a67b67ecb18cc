package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		name      string
		errorType ErrorType
		want      string
	}{
		{"unknown", ErrorTypeUnknown, "UNKNOWN"},
		{"configuration", ErrorTypeConfiguration, "CONFIGURATION"},
		{"validation", ErrorTypeValidation, "VALIDATION"},
		{"remote_api", ErrorTypeRemoteAPI, "REMOTE_API"},
		{"transport", ErrorTypeTransport, "TRANSPORT"},
		{"rate_limit", ErrorTypeRateLimit, "RATE_LIMIT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.errorType.String())
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "remote_with_code",
			err:  NewRemoteError("cancel_order", 400, "-2011", `{"code":-2011,"msg":"Unknown order sent."}`),
			want: `[cancel_order] REMOTE_API (400/-2011): {"code":-2011,"msg":"Unknown order sent."}`,
		},
		{
			name: "remote_without_code",
			err:  NewRemoteError("get_balance", 502, "", "Bad Gateway"),
			want: "[get_balance] REMOTE_API (502): Bad Gateway",
		},
		{
			name: "validation_with_violations",
			err:  NewValidationError("place_order", ErrCodeInvalidArguments, "invalid arguments", "side is required", "type is required"),
			want: "[place_order] VALIDATION (INVALID_ARGUMENTS): invalid arguments: side is required; type is required",
		},
		{
			name: "config_without_tool",
			err:  NewConfigError(ErrCodeNoCredentials, ErrNoCredentials),
			want: "CONFIGURATION (NO_CREDENTIALS): no credentials configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestNewUnknownOperationError(t *testing.T) {
	err := NewUnknownOperationError("not-a-real-tool")

	assert.True(t, errors.Is(err, ErrUnknownOperation))
	assert.True(t, IsValidationError(err))
	assert.True(t, IsErrorCode(err, ErrCodeUnknownOperation))
	assert.Contains(t, err.Error(), `"not-a-real-tool"`)
}

func TestNewTransportError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("execute: %w", NewTransportError("get_balance", cause))

	assert.True(t, errors.Is(err, cause))
	assert.True(t, IsTransportError(err))
	assert.False(t, IsRemoteError(err))
}

func TestError_Predicates(t *testing.T) {
	assert.True(t, IsRemoteError(NewRemoteError("x", 400, "", "")))
	assert.True(t, IsConfigError(NewConfigError(ErrCodeInvalidConfig, errors.New("bad"))))
	assert.False(t, IsValidationError(errors.New("plain")))
	assert.False(t, IsErrorCode(errors.New("plain"), ErrCodeTransport))
}

func TestError_WithCode(t *testing.T) {
	err := NewRateLimitError("place_order").WithCode(ErrCodeInvalidArguments)

	assert.Equal(t, string(ErrCodeInvalidArguments), err.Code)
	assert.Equal(t, ErrorTypeRateLimit, err.Type)
}
