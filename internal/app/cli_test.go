package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/afero"

	"github.com/kbukum/airelay/dispatch"
	"github.com/kbukum/airelay/errors"
)

type fakeProviders struct {
	mu         sync.Mutex
	targetLang string
	audioSize  int
}

func (f *fakeProviders) snapshot() (string, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.targetLang, f.audioSize
}

func (f *fakeProviders) start(t *testing.T) (chat, deepl, groq string) {
	t.Helper()
	c := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"hi there"}}]}`)
	}))
	d := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.targetLang = r.FormValue("target_lang")
		f.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"translations":[{"detected_source_language":"EN","text":"hallo"}]}`)
	}))
	g := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if file, _, err := r.FormFile("file"); err == nil {
			var buf bytes.Buffer
			_, _ = buf.ReadFrom(file)
			f.mu.Lock()
			f.audioSize = buf.Len()
			f.mu.Unlock()
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"text":"spoken words"}`)
	}))
	t.Cleanup(func() {
		c.Close()
		d.Close()
		g.Close()
	})
	return c.URL, d.URL, g.URL
}

// setup writes a config.yml pointing at the fake providers and returns the
// root command arguments that load it.
func setup(t *testing.T, f *fakeProviders) []string {
	t.Helper()
	chat, deepl, groq := f.start(t)

	dir := t.TempDir()
	promptPath := filepath.Join(dir, "system_prompt.txt")
	if err := os.WriteFile(promptPath, []byte("be brief"), 0o600); err != nil {
		t.Fatalf("write prompt: %v", err)
	}
	yml := fmt.Sprintf(`logging:
  level: error
chat:
  base_url: %s
translation:
  base_url: %s
transcription:
  base_url: %s
prompt:
  path: %s
`, chat, deepl, groq, promptPath)
	cfgPath := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(cfgPath, []byte(yml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("CEREBRAS_API_KEY", "c-key")
	t.Setenv("DEEPL_API_KEY", "d-key")
	t.Setenv("GROQ_API_KEY", "g-key")
	return []string{"--config", cfgPath}
}

func execute(t *testing.T, fs afero.Fs, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(fs)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCLI_Ask(t *testing.T) {
	f := &fakeProviders{}
	base := setup(t, f)

	out, err := execute(t, afero.NewMemMapFs(), append(base, "ask", "hello", "there")...)
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if strings.TrimSpace(out) != "hi there" {
		t.Errorf("expected 'hi there', got %q", out)
	}
}

func TestCLI_TranslateTargetOverride(t *testing.T) {
	f := &fakeProviders{}
	base := setup(t, f)

	out, err := execute(t, afero.NewMemMapFs(), append(base, "translate", "--target", "DE", "hello")...)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if strings.TrimSpace(out) != "hallo" {
		t.Errorf("expected 'hallo', got %q", out)
	}
	if target, _ := f.snapshot(); target != "DE" {
		t.Errorf("expected target_lang DE, got %q", target)
	}
}

func TestCLI_Transcribe(t *testing.T) {
	f := &fakeProviders{}
	base := setup(t, f)

	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "clip.wav", []byte("RIFF0000WAVE"), 0o600); err != nil {
		t.Fatalf("write audio: %v", err)
	}

	out, err := execute(t, fs, append(base, "transcribe", "clip.wav")...)
	if err != nil {
		t.Fatalf("transcribe: %v", err)
	}
	if strings.TrimSpace(out) != "spoken words" {
		t.Errorf("expected 'spoken words', got %q", out)
	}
	if _, size := f.snapshot(); size != len("RIFF0000WAVE") {
		t.Errorf("expected audio upload of %d bytes, got %d", len("RIFF0000WAVE"), size)
	}
}

func TestCLI_TranscribeMissingFile(t *testing.T) {
	f := &fakeProviders{}
	base := setup(t, f)

	_, err := execute(t, afero.NewMemMapFs(), append(base, "transcribe", "missing.wav")...)
	if err == nil || !strings.Contains(err.Error(), "read audio") {
		t.Errorf("expected read audio error, got %v", err)
	}
}

func TestCLI_Merge(t *testing.T) {
	f := &fakeProviders{}
	base := setup(t, f)

	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "clip.wav", []byte("RIFF"), 0o600)

	out, err := execute(t, fs, append(base, "merge", "clip.wav", "--transcript", "spoken word")...)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if strings.TrimSpace(out) != "hi there" {
		t.Errorf("expected 'hi there', got %q", out)
	}
}

func TestCLI_MergeEmptyTranscript(t *testing.T) {
	f := &fakeProviders{}
	base := setup(t, f)

	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "clip.wav", []byte("RIFF"), 0o600)

	_, err := execute(t, fs, append(base, "merge", "clip.wav")...)
	if !errors.HasCode(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
	if _, size := f.snapshot(); size != 0 {
		t.Error("expected no transcription call for an empty transcript")
	}
}

func TestCLI_MissingCredential(t *testing.T) {
	f := &fakeProviders{}
	base := setup(t, f)
	t.Setenv("CEREBRAS_API_KEY", "")

	_, err := execute(t, afero.NewMemMapFs(), append(base, "ask", "hello")...)
	if !errors.HasCode(err, errors.ErrCodeMissingCredential) {
		t.Errorf("expected MISSING_CREDENTIAL, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "CEREBRAS_API_KEY") {
		t.Errorf("expected error to name the variable, got %q", err.Error())
	}
}

func TestCLI_JSONOutput(t *testing.T) {
	f := &fakeProviders{}
	base := setup(t, f)

	out, err := execute(t, afero.NewMemMapFs(), append(base, "--json", "ask", "hello")...)
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	var res dispatch.Result
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if res.Text != "hi there" || !res.OK() {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestCLI_Version(t *testing.T) {
	out, err := execute(t, afero.NewMemMapFs(), "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "airelay ") {
		t.Errorf("expected version line, got %q", out)
	}
}

func TestCLI_AskRequiresMessage(t *testing.T) {
	if _, err := execute(t, afero.NewMemMapFs(), "ask"); err == nil {
		t.Error("expected argument error")
	}
}
