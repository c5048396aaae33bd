package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Configuration errors. These surface per call; none of them stops the process.
const (
	// ErrCodeMissingCredential indicates a provider secret is absent from the environment.
	ErrCodeMissingCredential ErrorCode = "MISSING_CREDENTIAL"
	// ErrCodePromptUnavailable indicates the system prompt file is missing or unreadable.
	ErrCodePromptUnavailable ErrorCode = "PROMPT_UNAVAILABLE"
)

// Provider exchange errors
const (
	// ErrCodeTransport indicates the provider could not be reached.
	ErrCodeTransport ErrorCode = "TRANSPORT_ERROR"
	// ErrCodeTimeout indicates the per-call deadline expired before the provider answered.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeProvider indicates the provider answered with a non-2xx status.
	ErrCodeProvider ErrorCode = "PROVIDER_ERROR"
	// ErrCodeDecode indicates the response body did not match the expected envelope.
	ErrCodeDecode ErrorCode = "DECODE_ERROR"
	// ErrCodeEmptyResponse indicates the envelope parsed but carried no result.
	ErrCodeEmptyResponse ErrorCode = "EMPTY_RESPONSE"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected failure inside the dispatcher.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeTransport: true,
	ErrCodeTimeout:   true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
// The dispatcher never retries on its own; the flag is informational for callers.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
