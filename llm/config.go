package llm

import (
	"time"
)

const (
	defaultName          = "cerebras"
	defaultBaseURL       = "https://api.cerebras.ai"
	defaultPath          = "/v1/chat/completions"
	defaultModel         = "llama-3.3-70b"
	defaultTemperature   = 0.5
	defaultCredentialEnv = "CEREBRAS_API_KEY"
	defaultTimeout       = 60 * time.Second
)

// Config holds configuration for the chat adapter.
type Config struct {
	// Name identifies this adapter in logs and errors.
	Name string `yaml:"name" mapstructure:"name" validate:"required"`

	// BaseURL is the provider's API base URL.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"required,url"`

	// Path is the chat completions endpoint.
	Path string `yaml:"path" mapstructure:"path" validate:"required"`

	// Model is the default model.
	Model string `yaml:"model" mapstructure:"model" validate:"required"`

	// Temperature is the default sampling temperature. It is always sent;
	// 0 selects the default of 0.5, use CompletionRequest.Temperature for 0.
	Temperature float64 `yaml:"temperature" mapstructure:"temperature" validate:"gte=0,lte=2"`

	// MaxTokens limits the reply length. 0 leaves it to the provider.
	MaxTokens int `yaml:"max_tokens" mapstructure:"max_tokens" validate:"gte=0"`

	// CredentialEnv names the environment variable holding the API key.
	CredentialEnv string `yaml:"credential_env" mapstructure:"credential_env" validate:"required"`

	// Timeout bounds one chat call.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"gt=0"`

	// Headers are additional HTTP headers sent with every request.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`
}

// ApplyDefaults fills zero-value fields with the Cerebras defaults.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = defaultName
	}
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.Path == "" {
		c.Path = defaultPath
	}
	if c.Model == "" {
		c.Model = defaultModel
	}
	if c.Temperature == 0 {
		c.Temperature = defaultTemperature
	}
	if c.CredentialEnv == "" {
		c.CredentialEnv = defaultCredentialEnv
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}
