package transcription

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kbukum/airelay/credential"
	"github.com/kbukum/airelay/envelope"
	"github.com/kbukum/airelay/httpclient"
	"github.com/kbukum/airelay/provider"
)

// Adapter uploads audio and returns its transcript.
//
// Adapter implements:
//   - provider.RequestResponse[TranscriptionRequest, string]
//   - provider.Closeable
type Adapter struct {
	cfg      Config
	http     *httpclient.Adapter
	creds    credential.Resolver
	pipeline provider.RequestResponse[TranscriptionRequest, string]
}

// New creates a transcription adapter.
func New(cfg Config, creds credential.Resolver, opts ...httpclient.Option) (*Adapter, error) {
	cfg.ApplyDefaults()

	transport, err := httpclient.New(httpclient.Config{
		Name:    cfg.Name,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("transcription: create http adapter: %w", err)
	}

	a := &Adapter{cfg: cfg, http: transport, creds: creds}
	a.pipeline = envelope.Bind[TranscriptionRequest, transcriptionResponse](transport, cfg.Name, a.buildRequest, a.extract)
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

// Execute uploads one recording and returns the transcript text.
func (a *Adapter) Execute(ctx context.Context, req TranscriptionRequest) (string, error) {
	return a.pipeline.Execute(ctx, req)
}

// Transcribe is Execute with the configured model.
func (a *Adapter) Transcribe(ctx context.Context, audio []byte, language string) (string, error) {
	return a.Execute(ctx, TranscriptionRequest{Audio: audio, Language: language})
}

// Config returns the adapter configuration with defaults applied.
func (a *Adapter) Config() Config { return a.cfg }

func (a *Adapter) buildRequest(ctx context.Context, req TranscriptionRequest) (httpclient.Request, error) {
	key, err := a.creds.Resolve(ctx, a.cfg.CredentialEnv)
	if err != nil {
		return httpclient.Request{}, err
	}

	model := a.cfg.Model
	if req.Model != "" {
		model = req.Model
	}

	body := &httpclient.MultipartBody{}
	body.AddField("model", model)
	body.AddField("language", req.Language)
	body.AddFile(httpclient.FileField{
		FieldName:   "file",
		FileName:    a.cfg.FileName,
		ContentType: a.cfg.ContentType,
		Data:        req.Audio,
	})

	return httpclient.Request{
		Method: http.MethodPost,
		Path:   a.cfg.Path,
		Body:   body,
		Auth:   httpclient.BearerAuth(key),
	}, nil
}

func (a *Adapter) extract(resp transcriptionResponse) (string, error) {
	return *resp.Text, nil
}
