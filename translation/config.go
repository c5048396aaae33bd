package translation

import "time"

// Auth modes.
const (
	AuthModeForm   = "form"
	AuthModeHeader = "header"
)

const (
	defaultName          = "deepl"
	defaultBaseURL       = "https://api-free.deepl.com"
	defaultPath          = "/v2/translate"
	defaultSourceLang    = "KA"
	defaultTargetLang    = "EN-US"
	defaultCredentialEnv = "DEEPL_API_KEY"
	defaultTimeout       = 30 * time.Second
)

// Config holds configuration for the translation adapter.
type Config struct {
	Name          string        `yaml:"name" mapstructure:"name" validate:"required"`
	BaseURL       string        `yaml:"base_url" mapstructure:"base_url" validate:"required,url"`
	Path          string        `yaml:"path" mapstructure:"path" validate:"required"`
	SourceLang    string        `yaml:"source_lang" mapstructure:"source_lang" validate:"required"`
	TargetLang    string        `yaml:"target_lang" mapstructure:"target_lang" validate:"required"`
	CredentialEnv string        `yaml:"credential_env" mapstructure:"credential_env" validate:"required"`
	AuthMode      string        `yaml:"auth_mode" mapstructure:"auth_mode" validate:"oneof=form header"`
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"gt=0"`
}

// ApplyDefaults fills zero-value fields with the DeepL free-tier defaults.
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
	if c.SourceLang == "" {
		c.SourceLang = defaultSourceLang
	}
	if c.TargetLang == "" {
		c.TargetLang = defaultTargetLang
	}
	if c.CredentialEnv == "" {
		c.CredentialEnv = defaultCredentialEnv
	}
	if c.AuthMode == "" {
		c.AuthMode = AuthModeForm
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}
