package httpclient

import (
	"context"
	"fmt"
	"testing"
)

func TestErrorCode_String(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{ErrCodeTimeout, "timeout"},
		{ErrCodeCanceled, "canceled"},
		{ErrCodeConnection, "connection"},
		{ErrCodeAuth, "auth"},
		{ErrCodeNotFound, "not_found"},
		{ErrCodeRateLimit, "rate_limit"},
		{ErrCodeValidation, "validation"},
		{ErrCodeServer, "server"},
		{ErrorCode(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("ErrorCode(%d).String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestError_Error(t *testing.T) {
	e := &Error{StatusCode: 404, Code: ErrCodeNotFound, Message: "Not Found"}
	want := "httpclient: not_found (HTTP 404): Not Found"
	if got := e.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	e2 := &Error{Code: ErrCodeConnection, Message: "connection refused"}
	want2 := "httpclient: connection: connection refused"
	if got := e2.Error(); got != want2 {
		t.Errorf("got %q, want %q", got, want2)
	}
}

func TestError_Unwrap(t *testing.T) {
	inner := NewValidationError("bad input")
	outer := &Error{Code: ErrCodeServer, Message: "wrapped", Err: inner}
	if outer.Unwrap() != inner {
		t.Error("Unwrap did not return inner error")
	}
}

func TestClassifyStatusCode(t *testing.T) {
	tests := []struct {
		code    int
		wantNil bool
		errCode ErrorCode
		retry   bool
	}{
		{200, true, 0, false},
		{201, true, 0, false},
		{204, true, 0, false},
		{302, false, ErrCodeServer, false},
		{400, false, ErrCodeValidation, false},
		{401, false, ErrCodeAuth, false},
		{403, false, ErrCodeAuth, false},
		{404, false, ErrCodeNotFound, false},
		{422, false, ErrCodeValidation, false},
		{429, false, ErrCodeRateLimit, true},
		{500, false, ErrCodeServer, true},
		{502, false, ErrCodeServer, true},
		{503, false, ErrCodeServer, true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("HTTP_%d", tt.code), func(t *testing.T) {
			e := ClassifyStatusCode(tt.code, []byte("body"))
			if tt.wantNil {
				if e != nil {
					t.Errorf("expected nil, got %v", e)
				}
				return
			}
			if e == nil {
				t.Fatal("expected error, got nil")
			}
			if e.Code != tt.errCode {
				t.Errorf("code = %v, want %v", e.Code, tt.errCode)
			}
			if e.Retryable != tt.retry {
				t.Errorf("retryable = %v, want %v", e.Retryable, tt.retry)
			}
			if string(e.Body) != "body" {
				t.Errorf("body = %q, want %q", e.Body, "body")
			}
			if !e.IsStatus() {
				t.Error("expected IsStatus for a received response")
			}
		})
	}
}

func TestIsHelpers(t *testing.T) {
	timeout := NewTimeoutError(context.DeadlineExceeded)
	canceled := NewCanceledError(context.Canceled)
	conn := NewConnectionError(fmt.Errorf("connection refused"))
	auth := ClassifyStatusCode(401, nil)
	notFound := ClassifyStatusCode(404, nil)
	rateLimit := ClassifyStatusCode(429, nil)
	server := ClassifyStatusCode(500, nil)
	validation := NewValidationError("bad")

	if !IsTimeout(timeout) {
		t.Error("IsTimeout should match timeout error")
	}
	if !IsCanceled(canceled) {
		t.Error("IsCanceled should match canceled error")
	}
	if !IsConnection(conn) {
		t.Error("IsConnection should match connection error")
	}
	if !IsAuth(auth) {
		t.Error("IsAuth should match auth error")
	}
	if !IsNotFound(notFound) {
		t.Error("IsNotFound should match not-found error")
	}
	if !IsRateLimit(rateLimit) {
		t.Error("IsRateLimit should match rate-limit error")
	}
	if !IsServerError(server) {
		t.Error("IsServerError should match server error")
	}
	if !IsRetryable(timeout) || !IsRetryable(conn) || !IsRetryable(server) {
		t.Error("timeout, connection and server errors should be retryable")
	}
	if IsRetryable(auth) || IsRetryable(validation) || IsRetryable(canceled) {
		t.Error("auth, validation and canceled errors should not be retryable")
	}
	if conn.IsStatus() {
		t.Error("connection error should not report a status")
	}
}
