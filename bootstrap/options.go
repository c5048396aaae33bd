package bootstrap

import (
	"time"

	"github.com/kbukum/airelay/credential"
	"github.com/kbukum/airelay/httpclient"
	"github.com/kbukum/airelay/logger"
	"github.com/kbukum/airelay/prompt"
)

// Option configures the App during creation.
type Option func(*appOptions)

type appOptions struct {
	logger          *logger.Logger
	gracefulTimeout *time.Duration
	credentials     credential.Resolver
	prompts         prompt.Loader
	httpOptions     []httpclient.Option
}

func resolveOptions(opts []Option) *appOptions {
	o := &appOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets a custom logger. By default the logger is initialized
// from the config's logging section.
func WithLogger(l *logger.Logger) Option {
	return func(o *appOptions) {
		o.logger = l
	}
}

// WithGracefulTimeout sets the maximum duration for graceful shutdown.
func WithGracefulTimeout(d time.Duration) Option {
	return func(o *appOptions) {
		o.gracefulTimeout = &d
	}
}

// WithCredentials replaces the environment-backed credential resolver.
func WithCredentials(r credential.Resolver) Option {
	return func(o *appOptions) {
		o.credentials = r
	}
}

// WithPromptLoader replaces the file-backed system prompt loader.
func WithPromptLoader(l prompt.Loader) Option {
	return func(o *appOptions) {
		o.prompts = l
	}
}

// WithHTTPOptions passes options to every provider's HTTP client.
func WithHTTPOptions(opts ...httpclient.Option) Option {
	return func(o *appOptions) {
		o.httpOptions = append(o.httpOptions, opts...)
	}
}
