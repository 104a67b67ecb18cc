package core

import "errors"

// ErrorCode represents a stable, machine-readable failure identifier.
type ErrorCode string

// Error code constants for failures raised locally.
const (
	// ErrCodeUnknownOperation indicates the tool name is not registered.
	ErrCodeUnknownOperation ErrorCode = "UNKNOWN_OPERATION"
	// ErrCodeInvalidArguments indicates the arguments failed schema validation.
	ErrCodeInvalidArguments ErrorCode = "INVALID_ARGUMENTS"
	// ErrCodeMissingIdentifier indicates none of a group of alternative identifiers was given.
	ErrCodeMissingIdentifier ErrorCode = "MISSING_IDENTIFIER"
	// ErrCodeReservedParameter indicates the caller tried to set timestamp or signature.
	ErrCodeReservedParameter ErrorCode = "RESERVED_PARAMETER"
	// ErrCodeUnsupportedValue indicates a parameter value cannot be serialized.
	ErrCodeUnsupportedValue ErrorCode = "UNSUPPORTED_VALUE"

	// ErrCodeRemoteAPI marks a remote rejection whose payload carried no API code.
	ErrCodeRemoteAPI ErrorCode = "REMOTE_API_ERROR"
	// ErrCodeTransport indicates a network failure.
	ErrCodeTransport ErrorCode = "TRANSPORT_ERROR"
	// ErrCodeLocalRateLimit indicates the local limiter denied the call.
	ErrCodeLocalRateLimit ErrorCode = "LOCAL_RATE_LIMIT"

	// Configuration errors
	ErrCodeNoCredentials ErrorCode = "NO_CREDENTIALS"
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// IsErrorCode checks if the error carries the specified error code.
func IsErrorCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return ErrorCode(e.Code) == code
	}
	return false
}
