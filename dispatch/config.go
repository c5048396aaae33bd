package dispatch

import "time"

// MergeConfig configures MergeTranscripts.
type MergeConfig struct {
	// Language is the tag the recording is transcribed with.
	Language string `yaml:"language" mapstructure:"language" validate:"required"`
}

// ApplyDefaults sets English, which is what the browser recording is
// transcribed into before merging with the native-language transcript.
func (c *MergeConfig) ApplyDefaults() {
	if c.Language == "" {
		c.Language = "en"
	}
}

// Timeouts bound each entry point. They are layered on the caller's
// context, so whichever deadline is earlier wins.
type Timeouts struct {
	Chat       time.Duration `yaml:"chat" mapstructure:"chat"`
	Translate  time.Duration `yaml:"translate" mapstructure:"translate"`
	Transcribe time.Duration `yaml:"transcribe" mapstructure:"transcribe"`
}

// ApplyDefaults fills unset timeouts.
func (t *Timeouts) ApplyDefaults() {
	if t.Chat <= 0 {
		t.Chat = 60 * time.Second
	}
	if t.Translate <= 0 {
		t.Translate = 30 * time.Second
	}
	if t.Transcribe <= 0 {
		t.Transcribe = 120 * time.Second
	}
}
