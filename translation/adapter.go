package translation

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kbukum/airelay/credential"
	"github.com/kbukum/airelay/envelope"
	"github.com/kbukum/airelay/httpclient"
	"github.com/kbukum/airelay/provider"
)

// Adapter translates text through DeepL.
//
// Adapter implements:
//   - provider.RequestResponse[TranslateRequest, Translation]
//   - provider.Closeable
type Adapter struct {
	cfg      Config
	http     *httpclient.Adapter
	creds    credential.Resolver
	pipeline provider.RequestResponse[TranslateRequest, Translation]
}

// New creates a translation adapter.
func New(cfg Config, creds credential.Resolver, opts ...httpclient.Option) (*Adapter, error) {
	cfg.ApplyDefaults()

	transport, err := httpclient.New(httpclient.Config{
		Name:    cfg.Name,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("translation: create http adapter: %w", err)
	}

	a := &Adapter{cfg: cfg, http: transport, creds: creds}
	a.pipeline = envelope.BindTyped[TranslateRequest, translateResponse, Translation](transport, cfg.Name, a.buildRequest, a.extract)
	return a, nil
}

// Name returns the adapter name.
func (a *Adapter) Name() string { return a.cfg.Name }

// IsAvailable reports whether the API key is currently set.
func (a *Adapter) IsAvailable(ctx context.Context) bool {
	_, err := a.creds.Resolve(ctx, a.cfg.CredentialEnv)
	return err == nil
}

// Close releases idle connections.
func (a *Adapter) Close(ctx context.Context) error { return a.http.Close(ctx) }

// Execute translates one text and returns the first translation with the
// language DeepL detected.
func (a *Adapter) Execute(ctx context.Context, req TranslateRequest) (Translation, error) {
	return a.pipeline.Execute(ctx, req)
}

// Translate translates text with the configured language pair.
func (a *Adapter) Translate(ctx context.Context, text string) (string, error) {
	t, err := a.Execute(ctx, TranslateRequest{Text: text})
	if err != nil {
		return "", err
	}
	return t.Text, nil
}

// Config returns the adapter configuration with defaults applied.
func (a *Adapter) Config() Config { return a.cfg }

func (a *Adapter) buildRequest(ctx context.Context, req TranslateRequest) (httpclient.Request, error) {
	key, err := a.creds.Resolve(ctx, a.cfg.CredentialEnv)
	if err != nil {
		return httpclient.Request{}, err
	}

	source, target := a.cfg.SourceLang, a.cfg.TargetLang
	if req.SourceLang != "" {
		source = req.SourceLang
	}
	if req.TargetLang != "" {
		target = req.TargetLang
	}

	form := httpclient.NewForm()
	out := httpclient.Request{Method: http.MethodPost, Path: a.cfg.Path, Body: form}
	if a.cfg.AuthMode == AuthModeHeader {
		out.Auth = httpclient.SchemeAuth("DeepL-Auth-Key", key)
	} else {
		form.Add("auth_key", key)
	}
	form.Add("text", req.Text).
		Add("source_lang", source).
		Add("target_lang", target).
		Add("enable_beta_languages", "1")
	return out, nil
}

func (a *Adapter) extract(resp translateResponse) (Translation, error) {
	item, err := envelope.First(a.cfg.Name, resp.Translations, "translation")
	if err != nil {
		return Translation{}, err
	}
	return Translation{Text: *item.Text, DetectedSourceLanguage: *item.DetectedSourceLanguage}, nil
}
