package transcription

import "time"

const (
	defaultName          = "groq"
	defaultBaseURL       = "https://api.groq.com"
	defaultPath          = "/openai/v1/audio/transcriptions"
	defaultModel         = "whisper-large-v3"
	defaultFileName      = "recording.webm"
	defaultContentType   = "audio/webm"
	defaultCredentialEnv = "GROQ_API_KEY"
	defaultTimeout       = 120 * time.Second
)

// Config holds configuration for the transcription adapter.
type Config struct {
	Name          string        `yaml:"name" mapstructure:"name" validate:"required"`
	BaseURL       string        `yaml:"base_url" mapstructure:"base_url" validate:"required,url"`
	Path          string        `yaml:"path" mapstructure:"path" validate:"required"`
	Model         string        `yaml:"model" mapstructure:"model" validate:"required"`
	FileName      string        `yaml:"file_name" mapstructure:"file_name" validate:"required"`
	ContentType   string        `yaml:"content_type" mapstructure:"content_type" validate:"required"`
	CredentialEnv string        `yaml:"credential_env" mapstructure:"credential_env" validate:"required"`
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"gt=0"`
}

// ApplyDefaults fills zero-value fields with the Groq defaults.
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
	if c.FileName == "" {
		c.FileName = defaultFileName
	}
	if c.ContentType == "" {
		c.ContentType = defaultContentType
	}
	if c.CredentialEnv == "" {
		c.CredentialEnv = defaultCredentialEnv
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}
