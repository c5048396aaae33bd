// Package prompt loads the chat system prompt.
package prompt

import (
	"context"

	"github.com/spf13/afero"

	"github.com/kbukum/airelay/errors"
)

// DefaultPath is the prompt file looked up when no path is configured.
const DefaultPath = "system_prompt.txt"

// Config selects the prompt file.
type Config struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// ApplyDefaults sets the default path.
func (c *Config) ApplyDefaults() {
	if c.Path == "" {
		c.Path = DefaultPath
	}
}

// Loader returns the system prompt text.
type Loader interface {
	Load(ctx context.Context) (string, error)
}

// FileLoader reads the prompt from a file on every call, so edits apply to
// the next request without a restart.
type FileLoader struct {
	Path string
	Fs   afero.Fs
}

// NewFileLoader returns a FileLoader on the OS filesystem.
func NewFileLoader(cfg Config) *FileLoader {
	cfg.ApplyDefaults()
	return &FileLoader{Path: cfg.Path, Fs: afero.NewOsFs()}
}

// Load reads the whole file. The text is returned as-is.
func (l *FileLoader) Load(_ context.Context) (string, error) {
	path := l.Path
	if path == "" {
		path = DefaultPath
	}
	fs := l.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", errors.PromptUnavailable(path, err)
	}
	return string(data), nil
}

// StaticLoader always returns the same text.
type StaticLoader string

// Load implements Loader.
func (s StaticLoader) Load(context.Context) (string, error) { return string(s), nil }
