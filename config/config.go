package config

import (
	"fmt"

	"github.com/kbukum/airelay/dispatch"
	"github.com/kbukum/airelay/llm"
	"github.com/kbukum/airelay/observability"
	"github.com/kbukum/airelay/prompt"
	"github.com/kbukum/airelay/server"
	"github.com/kbukum/airelay/transcription"
	"github.com/kbukum/airelay/translation"
	"github.com/kbukum/airelay/validation"
	"github.com/kbukum/airelay/version"
)

// DefaultServiceName names the process in logs, spans and file lookup.
const DefaultServiceName = "airelay"

// Config is the complete airelay configuration. It is built once at
// startup and handed to the adapters; secrets are not part of it.
type Config struct {
	ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Chat          llm.Config           `yaml:"chat" mapstructure:"chat"`
	Translation   translation.Config   `yaml:"translation" mapstructure:"translation"`
	Transcription transcription.Config `yaml:"transcription" mapstructure:"transcription"`
	Prompt        prompt.Config        `yaml:"prompt" mapstructure:"prompt"`
	Merge         dispatch.MergeConfig `yaml:"merge" mapstructure:"merge"`
	Timeouts      dispatch.Timeouts    `yaml:"timeouts" mapstructure:"timeouts"`
	Server        server.Config        `yaml:"server" mapstructure:"server"`
	Telemetry     observability.Config `yaml:"telemetry" mapstructure:"telemetry"`
}

// ApplyDefaults fills every section.
func (c *Config) ApplyDefaults() {
	c.ServiceConfig.ApplyDefaults()
	c.Chat.ApplyDefaults()
	c.Translation.ApplyDefaults()
	c.Transcription.ApplyDefaults()
	c.Prompt.ApplyDefaults()
	c.Merge.ApplyDefaults()
	c.Timeouts.ApplyDefaults()
	c.Server.ApplyDefaults()

	if c.Telemetry.ServiceName == "" {
		c.Telemetry.ServiceName = c.Name
	}
	if c.Telemetry.Environment == "" {
		c.Telemetry.Environment = c.Environment
	}
	if c.Telemetry.ServiceVersion == "" {
		c.Telemetry.ServiceVersion = version.Get().Version
	}
	c.Telemetry.ApplyDefaults()
}

// Validate checks the service fields, then every struct tag.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := validation.Validate(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Load resolves config.yml and .env, applies defaults and validates.
func Load(opts ...LoaderOption) (*Config, error) {
	cfg := &Config{}
	if err := LoadConfig(DefaultServiceName, cfg, opts...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
