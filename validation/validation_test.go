package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/airelay/errors"
)

func TestValidatorRequired(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"hello", false},
		{"", true},
		{"   ", true},
	}
	for _, tt := range tests {
		v := New().Required("message", tt.value)
		if v.HasErrors() != tt.wantErr {
			t.Errorf("Required(%q): expected error=%v, got %v", tt.value, tt.wantErr, v.HasErrors())
		}
	}
}

func TestValidatorRequiredUUID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid", uuid.New().String(), false},
		{"empty", "", true},
		{"malformed", "not-a-uuid", true},
		{"nil uuid", uuid.Nil.String(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New().RequiredUUID("id", tt.value)
			if v.HasErrors() != tt.wantErr {
				t.Errorf("expected error=%v, got %v (%v)", tt.wantErr, v.HasErrors(), v.Errors())
			}
		})
	}
}

func TestValidatorOptionalUUID(t *testing.T) {
	if New().OptionalUUID("X-Request-Id", "").HasErrors() {
		t.Error("expected no error for empty optional UUID")
	}
	if New().OptionalUUID("X-Request-Id", uuid.New().String()).HasErrors() {
		t.Error("expected no error for valid optional UUID")
	}
	if !New().OptionalUUID("X-Request-Id", "abc").HasErrors() {
		t.Error("expected error for invalid optional UUID")
	}
}

func TestValidatorMaxBytes(t *testing.T) {
	if New().MaxBytes("file", 10, 100).HasErrors() {
		t.Error("expected no error within limit")
	}
	if !New().MaxBytes("file", 101, 100).HasErrors() {
		t.Error("expected error above limit")
	}
	if New().MaxBytes("file", 1<<30, 0).HasErrors() {
		t.Error("expected no limit when max is 0")
	}
}

func TestValidatorOneOf(t *testing.T) {
	allowed := []string{"form", "header"}
	if New().OneOf("auth_mode", "form", allowed).HasErrors() {
		t.Error("expected no error for allowed value")
	}
	if !New().OneOf("auth_mode", "query", allowed).HasErrors() {
		t.Error("expected error for unknown value")
	}
	if New().OneOf("auth_mode", "", allowed).HasErrors() {
		t.Error("expected empty value to be skipped")
	}
}

func TestValidatorCustom(t *testing.T) {
	v := New().Custom(false, "file", "is required")
	if !v.HasErrors() || v.Errors()[0].Message != "is required" {
		t.Errorf("expected custom error, got %v", v.Errors())
	}
}

func TestValidatorValidate(t *testing.T) {
	if New().Required("text", "x").Validate() != nil {
		t.Error("expected nil for valid input")
	}

	appErr := New().Required("transcript", "").Required("file", "").Validate()
	if appErr == nil {
		t.Fatal("expected error")
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", appErr.Code)
	}
	if !strings.Contains(appErr.Message, "transcript") || !strings.Contains(appErr.Message, "file") {
		t.Errorf("expected both fields in message, got %q", appErr.Message)
	}
}

func TestStructValidate_Payload(t *testing.T) {
	type translateRequest struct {
		Text string `json:"text" validate:"required"`
	}

	if err := Validate(translateRequest{Text: "გამარჯობა"}); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	err := Validate(translateRequest{})
	if !errors.HasCode(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("expected INVALID_INPUT, got %v", err)
	}
	if !strings.Contains(err.Error(), "text: is required") {
		t.Errorf("expected json field name, got %q", err.Error())
	}
}

func TestStructValidate_NestedConfig(t *testing.T) {
	type section struct {
		BaseURL string        `mapstructure:"base_url" validate:"required,url"`
		Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
		Mode    string        `mapstructure:"mode" validate:"oneof=form header"`
	}
	type root struct {
		Chat section `mapstructure:"chat"`
	}

	err := Validate(root{Chat: section{BaseURL: "not a url", Mode: "query"}})
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{
		"chat.base_url: must be a valid URL",
		"chat.timeout: must be greater than 0",
		"chat.mode: must be one of: form header",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in %q", want, msg)
		}
	}
}

func TestValidateUUIDFunc(t *testing.T) {
	valid := uuid.New().String()
	id, err := ValidateUUID("request_id", valid)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id.String() != valid {
		t.Errorf("expected %s, got %s", valid, id.String())
	}

	if _, err := ValidateUUID("request_id", ""); err == nil {
		t.Error("expected error for empty UUID")
	}
	if _, err := ValidateUUID("request_id", "bad"); err == nil {
		t.Error("expected error for invalid UUID")
	}
}
