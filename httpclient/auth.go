package httpclient

import "net/http"

// AuthType identifies the authentication method.
type AuthType int

const (
	// AuthNone disables authentication.
	AuthNone AuthType = iota
	// AuthBearer uses Bearer token authentication.
	AuthBearer
	// AuthAPIKey places a key in a named header.
	AuthAPIKey
)

// AuthConfig configures request authentication.
type AuthConfig struct {
	// Type is the authentication method.
	Type AuthType
	// Token is the bearer token (AuthBearer).
	Token string
	// Key is the API key value (AuthAPIKey).
	Key string
	// Name is the header name (AuthAPIKey). Defaults to "X-API-Key".
	Name string
	// Prefix is prepended to Key, e.g. "DeepL-Auth-Key " (AuthAPIKey).
	Prefix string
}

// BearerAuth creates a bearer token auth config.
func BearerAuth(token string) *AuthConfig {
	return &AuthConfig{Type: AuthBearer, Token: token}
}

// APIKeyAuthHeader creates an API key auth config with a custom header name.
func APIKeyAuthHeader(key, headerName string) *AuthConfig {
	return &AuthConfig{Type: AuthAPIKey, Key: key, Name: headerName}
}

// SchemeAuth sends "<scheme> <key>" in the Authorization header.
func SchemeAuth(scheme, key string) *AuthConfig {
	return &AuthConfig{Type: AuthAPIKey, Key: key, Name: "Authorization", Prefix: scheme + " "}
}

// String never includes the secret.
func (a *AuthConfig) String() string {
	if a == nil {
		return "none"
	}
	switch a.Type {
	case AuthBearer:
		return "bearer"
	case AuthAPIKey:
		return "api_key"
	default:
		return "none"
	}
}

// apply applies authentication to an HTTP request.
func (a *AuthConfig) apply(req *http.Request) {
	if a == nil {
		return
	}
	switch a.Type {
	case AuthBearer:
		req.Header.Set("Authorization", "Bearer "+a.Token)
	case AuthAPIKey:
		name := a.Name
		if name == "" {
			name = "X-API-Key"
		}
		req.Header.Set(name, a.Prefix+a.Key)
	}
}
