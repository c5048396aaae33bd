// Package errors provides the unified error type of the dispatcher.
// Every failure a provider call can produce is an AppError carrying a
// machine-readable code, a message safe to show to the user, an HTTP status
// for the bridge, and a retryable hint.
package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the recommended HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Retryable:  IsRetryableCode(code),
	}
}

// --- Configuration ---

// MissingCredential reports that the named secret is unset or empty.
// The value itself never appears in the error.
func MissingCredential(name string) *AppError {
	return &AppError{
		Code: ErrCodeMissingCredential, Message: fmt.Sprintf("%s must be set in the environment", name),
		HTTPStatus: http.StatusInternalServerError, Retryable: false,
		Details: map[string]any{"credential": name},
	}
}

// PromptUnavailable reports that the system prompt file could not be read.
func PromptUnavailable(path string, cause error) *AppError {
	return &AppError{
		Code: ErrCodePromptUnavailable, Message: fmt.Sprintf("failed to read system prompt %s", path),
		HTTPStatus: http.StatusInternalServerError, Retryable: false,
		Details: map[string]any{"path": path}, Cause: cause,
	}
}

// --- Provider exchange ---

// TransportError reports that the request never produced a response.
func TransportError(provider string, cause error) *AppError {
	msg := fmt.Sprintf("%s request failed", provider)
	if cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, cause)
	}
	return &AppError{
		Code: ErrCodeTransport, Message: msg,
		HTTPStatus: http.StatusBadGateway, Retryable: true,
		Details: map[string]any{"provider": provider}, Cause: cause,
	}
}

// Timeout creates a new AppError for a request that timed out.
func Timeout(operation string) *AppError {
	return &AppError{
		Code: ErrCodeTimeout, Message: fmt.Sprintf("%s timed out", operation),
		HTTPStatus: http.StatusGatewayTimeout, Retryable: true,
		Details: map[string]any{"operation": operation},
	}
}

// ProviderError reports a non-2xx answer. The raw body is kept in the
// message because providers explain the failure there.
func ProviderError(provider string, status int, body string) *AppError {
	msg := fmt.Sprintf("%s API error (HTTP %d)", provider, status)
	if b := strings.TrimSpace(body); b != "" {
		msg = fmt.Sprintf("%s: %s", msg, b)
	}
	return &AppError{
		Code: ErrCodeProvider, Message: msg,
		HTTPStatus: http.StatusBadGateway,
		Retryable:  status == http.StatusTooManyRequests || status >= 500,
		Details:    map[string]any{"provider": provider, "status": status, "body": body},
	}
}

// DecodeError reports a 2xx body that does not match the expected envelope.
func DecodeError(provider string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeDecode, Message: fmt.Sprintf("failed to parse %s response", provider),
		HTTPStatus: http.StatusBadGateway, Retryable: false,
		Details: map[string]any{"provider": provider}, Cause: cause,
	}
}

// EmptyResponse reports a well-formed envelope with nothing in it.
func EmptyResponse(provider, what string) *AppError {
	return &AppError{
		Code: ErrCodeEmptyResponse, Message: fmt.Sprintf("no %s found in %s response", what, provider),
		HTTPStatus: http.StatusBadGateway, Retryable: false,
		Details: map[string]any{"provider": provider},
	}
}

// --- Validation ---

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		HTTPStatus: http.StatusBadRequest, Retryable: false, Details: details,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		HTTPStatus: http.StatusBadRequest, Retryable: false,
	}
}

// MissingField creates a new AppError for a missing required field.
func MissingField(field string) *AppError {
	return &AppError{
		Code: ErrCodeMissingField, Message: fmt.Sprintf("Missing required field: %s", field),
		HTTPStatus: http.StatusBadRequest, Retryable: false,
		Details: map[string]any{"field": field},
	}
}

// --- Internal ---

// Internal creates a new AppError for an unexpected failure.
func Internal(cause error) *AppError {
	msg := "internal error"
	if cause != nil {
		msg = fmt.Sprintf("internal error: %v", cause)
	}
	return &AppError{
		Code: ErrCodeInternal, Message: msg,
		HTTPStatus: http.StatusInternalServerError, Retryable: false, Cause: cause,
	}
}
