package httpclient

import (
	"net/http"
	"testing"
)

func TestBearerAuth(t *testing.T) {
	auth := BearerAuth("my-token")
	req, _ := http.NewRequest("GET", "http://example.com", nil)
	auth.apply(req)
	if got := req.Header.Get("Authorization"); got != "Bearer my-token" {
		t.Errorf("got %q, want %q", got, "Bearer my-token")
	}
}

func TestAPIKeyAuthHeader_CustomName(t *testing.T) {
	auth := APIKeyAuthHeader("key123", "X-Custom-Key")
	req, _ := http.NewRequest("GET", "http://example.com", nil)
	auth.apply(req)
	if got := req.Header.Get("X-Custom-Key"); got != "key123" {
		t.Errorf("got %q, want %q", got, "key123")
	}
}

func TestAPIKeyAuth_DefaultHeader(t *testing.T) {
	auth := &AuthConfig{Type: AuthAPIKey, Key: "k"}
	req, _ := http.NewRequest("GET", "http://example.com", nil)
	auth.apply(req)
	if got := req.Header.Get("X-API-Key"); got != "k" {
		t.Errorf("got %q, want %q", got, "k")
	}
}

func TestSchemeAuth(t *testing.T) {
	auth := SchemeAuth("DeepL-Auth-Key", "abc:fx")
	req, _ := http.NewRequest("POST", "http://example.com", nil)
	auth.apply(req)
	if got := req.Header.Get("Authorization"); got != "DeepL-Auth-Key abc:fx" {
		t.Errorf("got %q, want %q", got, "DeepL-Auth-Key abc:fx")
	}
}

func TestNilAuth(t *testing.T) {
	var auth *AuthConfig
	req, _ := http.NewRequest("GET", "http://example.com", nil)
	auth.apply(req) // should not panic
	if req.Header.Get("Authorization") != "" {
		t.Error("nil auth should not set any header")
	}
}

func TestAuthNone(t *testing.T) {
	auth := &AuthConfig{Type: AuthNone}
	req, _ := http.NewRequest("GET", "http://example.com", nil)
	auth.apply(req)
	if len(req.Header) != 0 {
		t.Errorf("AuthNone should not set headers, got %v", req.Header)
	}
}

func TestAuthConfig_String_HidesSecret(t *testing.T) {
	tests := []struct {
		auth *AuthConfig
		want string
	}{
		{nil, "none"},
		{BearerAuth("secret"), "bearer"},
		{APIKeyAuthHeader("secret", "X-Key"), "api_key"},
	}
	for _, tt := range tests {
		if got := tt.auth.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
