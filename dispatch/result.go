package dispatch

import (
	"net/http"

	"github.com/kbukum/airelay/errors"
)

// Result is the outcome of one dispatch call. Exactly one of Text or Error
// is meaningful; Code is set only on failure.
type Result struct {
	Text  string           `json:"text,omitempty"`
	Error string           `json:"error,omitempty"`
	Code  errors.ErrorCode `json:"code,omitempty"`

	// Retryable mirrors the error's hint. Nothing is retried internally.
	Retryable bool `json:"retryable,omitempty"`
}

// Success wraps a reply.
func Success(text string) Result {
	return Result{Text: text}
}

// Failure converts any error into a Result. Errors that are not app errors
// become INTERNAL_ERROR.
func Failure(err error) Result {
	appErr := errors.Wrap(err)
	if appErr == nil {
		appErr = errors.Internal(nil)
	}
	return Result{Error: appErr.Message, Code: appErr.Code, Retryable: appErr.Retryable}
}

// OK reports whether the call succeeded.
func (r Result) OK() bool { return r.Code == "" }

// Err rebuilds an AppError from a failed Result, or nil on success.
func (r Result) Err() *errors.AppError {
	if r.OK() {
		return nil
	}
	status := http.StatusBadGateway
	switch r.Code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeMissingField:
		status = http.StatusBadRequest
	case errors.ErrCodeMissingCredential, errors.ErrCodePromptUnavailable, errors.ErrCodeInternal:
		status = http.StatusInternalServerError
	case errors.ErrCodeTimeout:
		status = http.StatusGatewayTimeout
	}
	e := errors.New(r.Code, r.Error, status)
	e.Retryable = r.Retryable
	return e
}
