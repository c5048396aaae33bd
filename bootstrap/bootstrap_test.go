package bootstrap

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kbukum/airelay/config"
	"github.com/kbukum/airelay/credential"
	"github.com/kbukum/airelay/dispatch"
	"github.com/kbukum/airelay/errors"
	"github.com/kbukum/airelay/logger"
	"github.com/kbukum/airelay/prompt"
	"github.com/kbukum/airelay/translation"
)

func jsonServer(t *testing.T, body any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// newTestConfig points every adapter at a local fake provider.
func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	chat := jsonServer(t, map[string]any{
		"choices": []map[string]any{{"message": map[string]string{"role": "assistant", "content": "hi there"}}},
	})
	deepl := jsonServer(t, map[string]any{
		"translations": []map[string]string{{"text": "hola", "detected_source_language": "EN"}},
	})
	groq := jsonServer(t, map[string]any{"text": "spoken words"})

	cfg := &config.Config{}
	cfg.Chat.BaseURL = chat.URL
	cfg.Translation.BaseURL = deepl.URL
	cfg.Transcription.BaseURL = groq.URL
	return cfg
}

var testCreds = credential.StaticResolver{
	"CEREBRAS_API_KEY": "c-key",
	"DEEPL_API_KEY":    "d-key",
	"GROQ_API_KEY":     "g-key",
}

func newTestApp(t *testing.T, cfg *config.Config, opts ...Option) *App {
	t.Helper()
	base := []Option{
		WithLogger(logger.NewNop()),
		WithCredentials(testCreds),
		WithPromptLoader(prompt.StaticLoader("be brief")),
	}
	app, err := NewApp(cfg, append(base, opts...)...)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	return app
}

func TestNewApp_Defaults(t *testing.T) {
	app := newTestApp(t, &config.Config{})
	if app.Name != config.DefaultServiceName {
		t.Errorf("expected name %q, got %q", config.DefaultServiceName, app.Name)
	}
	if app.gracefulTimeout != 15*time.Second {
		t.Errorf("expected 15s graceful timeout, got %v", app.gracefulTimeout)
	}
	if app.Dispatcher != nil {
		t.Error("expected dispatcher to be built lazily")
	}
}

func TestNewApp_GracefulTimeoutOption(t *testing.T) {
	app := newTestApp(t, &config.Config{}, WithGracefulTimeout(2*time.Second))
	if app.gracefulTimeout != 2*time.Second {
		t.Errorf("expected 2s, got %v", app.gracefulTimeout)
	}
}

func TestNewApp_InvalidConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Translation.AuthMode = "cookie"
	if _, err := NewApp(cfg, WithLogger(logger.NewNop())); err == nil {
		t.Error("expected validation error")
	}
}

func TestRunTask_DispatchesAllOperations(t *testing.T) {
	app := newTestApp(t, newTestConfig(t))

	var ask, tr, stt, merged dispatch.Result
	err := app.RunTask(context.Background(), func(ctx context.Context, d *dispatch.Dispatcher) error {
		ask = d.AskChat(ctx, "hello")
		tr = d.TranslateWith(ctx, translation.TranslateRequest{Text: "hello", TargetLang: "ES"})
		stt = d.Transcribe(ctx, []byte("RIFF"), "en")
		merged = d.MergeTranscripts(ctx, "spoken word", []byte("RIFF"))
		return nil
	})
	if err != nil {
		t.Fatalf("RunTask: %v", err)
	}

	tests := []struct {
		name string
		res  dispatch.Result
		want string
	}{
		{"ask", ask, "hi there"},
		{"translate", tr, "hola"},
		{"transcribe", stt, "spoken words"},
		{"merge", merged, "hi there"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.res.OK() {
				t.Fatalf("expected success, got %s: %s", tt.res.Code, tt.res.Error)
			}
			if tt.res.Text != tt.want {
				t.Errorf("expected %q, got %q", tt.want, tt.res.Text)
			}
		})
	}
}

func TestRunTask_MissingCredential(t *testing.T) {
	app := newTestApp(t, newTestConfig(t), WithCredentials(credential.StaticResolver{}))

	var res dispatch.Result
	err := app.RunTask(context.Background(), func(ctx context.Context, d *dispatch.Dispatcher) error {
		res = d.AskChat(ctx, "hello")
		return nil
	})
	if err != nil {
		t.Fatalf("RunTask: %v", err)
	}
	if res.Code != errors.ErrCodeMissingCredential {
		t.Errorf("expected MISSING_CREDENTIAL, got %q", res.Code)
	}
}

func TestRunTask_ReturnsTaskError(t *testing.T) {
	app := newTestApp(t, newTestConfig(t))
	want := fmt.Errorf("task failed")
	err := app.RunTask(context.Background(), func(context.Context, *dispatch.Dispatcher) error {
		return want
	})
	if err != want {
		t.Errorf("expected task error, got %v", err)
	}
}

func TestStop_HooksRunInReverse(t *testing.T) {
	app := newTestApp(t, &config.Config{})

	var order []int
	app.OnStop(
		func(context.Context) error { order = append(order, 1); return nil },
		func(context.Context) error { order = append(order, 2); return fmt.Errorf("second failed") },
		func(context.Context) error { order = append(order, 3); return nil },
	)

	err := app.stop()
	if err == nil || err.Error() != "second failed" {
		t.Errorf("expected hook error, got %v", err)
	}
	if len(order) != 3 || order[0] != 3 || order[1] != 2 || order[2] != 1 {
		t.Errorf("expected [3 2 1], got %v", order)
	}
	if len(app.onStop) != 0 {
		t.Error("expected hooks to be cleared after stop")
	}
}

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}

func TestRun_ServesUntilCanceled(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = freePort(t)
	app := newTestApp(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	url := fmt.Sprintf("http://127.0.0.1:%d/health", cfg.Server.Port)
	var status int
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(url)
		if err == nil {
			status = resp.StatusCode
			resp.Body.Close()
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if status != http.StatusOK {
		t.Errorf("expected /health 200, got %d", status)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected clean shutdown, got %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
