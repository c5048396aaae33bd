package dispatch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kbukum/airelay/errors"
	"github.com/kbukum/airelay/logger"
	"github.com/kbukum/airelay/observability"
	"github.com/kbukum/airelay/provider"
	"github.com/kbukum/airelay/transcription"
	"github.com/kbukum/airelay/translation"
)

// Operation names used in logs, metrics and spans.
const (
	OpChat       = "chat"
	OpTranslate  = "translate"
	OpTranscribe = "transcribe"
	OpMerge      = "merge"
)

// ChatProvider answers a user message with the configured system prompt.
type ChatProvider interface {
	provider.Provider
	Ask(ctx context.Context, userMessage string) (string, error)
}

// Translator translates text.
type Translator = provider.RequestResponse[translation.TranslateRequest, translation.Translation]

// Transcriber turns audio into text.
type Transcriber = provider.RequestResponse[transcription.TranscriptionRequest, string]

// Option configures a Dispatcher.
type Option func(*options)

type options struct {
	log         *logger.Logger
	metrics     *observability.Metrics
	serviceName string
	tracing     bool
	timeouts    Timeouts
	merge       MergeConfig
}

// WithLogger sets the logger used for per-call logs.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithMetrics records every provider call on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithTracing wraps every provider call in a span named "{service}.{provider}".
func WithTracing(serviceName string) Option {
	return func(o *options) {
		o.tracing = true
		o.serviceName = serviceName
	}
}

// WithTimeouts overrides the per-operation timeouts.
func WithTimeouts(t Timeouts) Option {
	return func(o *options) { o.timeouts = t }
}

// WithMergeConfig overrides the merge settings.
func WithMergeConfig(c MergeConfig) Option {
	return func(o *options) { o.merge = c }
}

// Dispatcher routes UI requests to the provider adapters.
type Dispatcher struct {
	log      *logger.Logger
	timeouts Timeouts
	merge    MergeConfig
	registry *provider.Registry[provider.Provider]

	chat       provider.RequestResponse[string, string]
	translate  Translator
	transcribe Transcriber
}

// New builds a Dispatcher over the three adapters.
func New(chat ChatProvider, translator Translator, transcriber Transcriber, opts ...Option) (*Dispatcher, error) {
	if chat == nil || translator == nil || transcriber == nil {
		return nil, fmt.Errorf("dispatch: chat, translation and transcription providers are required")
	}

	o := options{serviceName: "airelay"}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.GetGlobalLogger()
	}
	o.timeouts.ApplyDefaults()
	o.merge.ApplyDefaults()

	registry := provider.NewRegistry[provider.Provider]()
	for _, p := range []provider.Provider{chat, translator, transcriber} {
		if err := registry.Register(p); err != nil {
			return nil, fmt.Errorf("dispatch: %w", err)
		}
	}

	return &Dispatcher{
		log:        o.log.WithComponent("dispatch"),
		timeouts:   o.timeouts,
		merge:      o.merge,
		registry:   registry,
		chat:       middleware[string, string](o)(askFunc{chat}),
		translate:  middleware[translation.TranslateRequest, translation.Translation](o)(translator),
		transcribe: middleware[transcription.TranscriptionRequest, string](o)(transcriber),
	}, nil
}

func middleware[I, O any](o options) provider.Middleware[I, O] {
	chain := []provider.Middleware[I, O]{provider.WithLogging[I, O](o.log)}
	if o.metrics != nil {
		chain = append(chain, provider.WithMetrics[I, O](o.metrics))
	}
	if o.tracing {
		chain = append(chain, provider.WithTracing[I, O](o.serviceName))
	}
	chain = append(chain, provider.WithRecovery[I, O]())
	return provider.Chain(chain...)
}

// askFunc exposes ChatProvider.Ask as a RequestResponse so it can be wrapped.
type askFunc struct{ ChatProvider }

func (a askFunc) Execute(ctx context.Context, msg string) (string, error) {
	return a.Ask(ctx, msg)
}

// AskChat sends one user message with the system prompt.
func (d *Dispatcher) AskChat(ctx context.Context, message string) Result {
	return result(call(ctx, OpChat, d.timeouts.Chat, d.chat, message))
}

// Translate translates text with the configured language pair.
func (d *Dispatcher) Translate(ctx context.Context, text string) Result {
	return d.TranslateWith(ctx, translation.TranslateRequest{Text: text})
}

// TranslateWith translates with per-call language overrides.
func (d *Dispatcher) TranslateWith(ctx context.Context, req translation.TranslateRequest) Result {
	t, err := call(ctx, OpTranslate, d.timeouts.Translate, d.translate, req)
	return result(t.Text, err)
}

// Transcribe transcribes a recording in the given language.
func (d *Dispatcher) Transcribe(ctx context.Context, audio []byte, language string) Result {
	req := transcription.TranscriptionRequest{Audio: audio, Language: language}
	return result(call(ctx, OpTranscribe, d.timeouts.Transcribe, d.transcribe, req))
}

// MergeTranscripts merges the browser's live transcript with a server-side
// transcription of the same recording. The recording is transcribed first,
// then both texts go to the chat model as "T1: <transcript>\nT2: <transcription>".
// A blank transcript fails before any outbound call.
func (d *Dispatcher) MergeTranscripts(ctx context.Context, transcript string, audio []byte) Result {
	t1 := strings.TrimSpace(transcript)
	if t1 == "" {
		return Failure(errors.InvalidInput("transcript", "transcript is empty"))
	}

	start := time.Now()
	req := transcription.TranscriptionRequest{Audio: audio, Language: d.merge.Language}
	t2, err := call(ctx, OpMerge, d.timeouts.Transcribe, d.transcribe, req)
	if err != nil {
		return Failure(err)
	}

	res := result(call(ctx, OpMerge, d.timeouts.Chat, d.chat, fmt.Sprintf("T1: %s\nT2: %s", t1, t2)))
	d.log.WithContext(ctx).Debug("merge finished", logger.DurationFields(OpMerge, time.Since(start)))
	return res
}

// Providers returns the registered adapter names.
func (d *Dispatcher) Providers() []string {
	return d.registry.List()
}

// Health reports each adapter as up or not configured.
func (d *Dispatcher) Health(ctx context.Context) []observability.Health {
	all := d.registry.All()
	out := make([]observability.Health, 0, len(all))
	for _, p := range all {
		out = append(out, observability.ProviderHealth(p.Name(), p.IsAvailable(ctx)))
	}
	return out
}

// Close releases the adapters' connections.
func (d *Dispatcher) Close(ctx context.Context) error {
	return provider.CloseAll(ctx, d.registry.All()...)
}

func call[I, O any](ctx context.Context, op string, timeout time.Duration, p provider.RequestResponse[I, O], in I) (O, error) {
	ctx = provider.ContextWithOperation(ctx, op)
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return p.Execute(ctx, in)
}

func result(text string, err error) Result {
	if err != nil {
		return Failure(err)
	}
	return Success(text)
}
