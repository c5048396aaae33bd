package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kbukum/airelay/credential"
	"github.com/kbukum/airelay/envelope"
	"github.com/kbukum/airelay/httpclient"
	"github.com/kbukum/airelay/prompt"
	"github.com/kbukum/airelay/provider"
)

// Adapter is the chat client for an OpenAI-compatible completions endpoint.
//
// Adapter implements:
//   - provider.RequestResponse[CompletionRequest, string]
//   - provider.Closeable
type Adapter struct {
	cfg      Config
	http     *httpclient.Adapter
	creds    credential.Resolver
	prompts  prompt.Loader
	pipeline provider.RequestResponse[CompletionRequest, string]
}

// New creates a chat adapter. The credential is resolved and the prompt is
// loaded on every call, never here.
func New(cfg Config, creds credential.Resolver, prompts prompt.Loader, opts ...httpclient.Option) (*Adapter, error) {
	cfg.ApplyDefaults()

	transport, err := httpclient.New(httpclient.Config{
		Name:    cfg.Name,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Headers: cfg.Headers,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("llm: create http adapter: %w", err)
	}

	a := &Adapter{
		cfg:     cfg,
		http:    transport,
		creds:   creds,
		prompts: prompts,
	}
	a.pipeline = envelope.Bind[CompletionRequest, chatResponse](transport, cfg.Name, a.buildRequest, a.extract)
	return a, nil
}

// --- provider.Provider interface ---

// Name returns the adapter name.
func (a *Adapter) Name() string { return a.cfg.Name }

// IsAvailable reports whether the API key is currently set.
func (a *Adapter) IsAvailable(ctx context.Context) bool {
	_, err := a.creds.Resolve(ctx, a.cfg.CredentialEnv)
	return err == nil
}

// --- provider.Closeable interface ---

// Close releases idle connections.
func (a *Adapter) Close(ctx context.Context) error { return a.http.Close(ctx) }

// --- provider.RequestResponse[CompletionRequest, string] interface ---

// Execute sends one completion request and returns the first choice's
// content verbatim.
func (a *Adapter) Execute(ctx context.Context, req CompletionRequest) (string, error) {
	return a.pipeline.Execute(ctx, req)
}

// Ask sends the system prompt and one user message, always as two turns.
// The prompt is loaded first, so a missing prompt file fails before any
// network traffic. Empty prompt and message texts are sent as they are.
func (a *Adapter) Ask(ctx context.Context, userMessage string) (string, error) {
	system, err := a.prompts.Load(ctx)
	if err != nil {
		return "", err
	}
	return a.Execute(ctx, CompletionRequest{
		SystemPrompt: &system,
		Messages:     []Message{{Role: RoleUser, Content: userMessage}},
	})
}

// Config returns the adapter configuration with defaults applied.
func (a *Adapter) Config() Config { return a.cfg }

// --- internal ---

func (a *Adapter) buildRequest(ctx context.Context, req CompletionRequest) (httpclient.Request, error) {
	key, err := a.creds.Resolve(ctx, a.cfg.CredentialEnv)
	if err != nil {
		return httpclient.Request{}, err
	}
	return httpclient.Request{
		Method: http.MethodPost,
		Path:   a.cfg.Path,
		Body:   a.payload(req),
		Auth:   httpclient.BearerAuth(key),
	}, nil
}

func (a *Adapter) payload(req CompletionRequest) chatRequest {
	body := chatRequest{
		Model:       a.cfg.Model,
		Temperature: a.cfg.Temperature,
		MaxTokens:   a.cfg.MaxTokens,
	}
	if req.Model != "" {
		body.Model = req.Model
	}
	if req.Temperature != nil {
		body.Temperature = *req.Temperature
	}
	if req.MaxTokens > 0 {
		body.MaxTokens = req.MaxTokens
	}

	body.Messages = make([]Message, 0, len(req.Messages)+1)
	if req.SystemPrompt != nil {
		body.Messages = append(body.Messages, Message{Role: RoleSystem, Content: *req.SystemPrompt})
	}
	body.Messages = append(body.Messages, req.Messages...)
	return body
}

func (a *Adapter) extract(resp chatResponse) (string, error) {
	choice, err := envelope.First(a.cfg.Name, resp.Choices, "choices")
	if err != nil {
		return "", err
	}
	return *choice.Message.Content, nil
}
