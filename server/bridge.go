package server

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/airelay/dispatch"
	apperrors "github.com/kbukum/airelay/errors"
	"github.com/kbukum/airelay/observability"
	"github.com/kbukum/airelay/translation"
	"github.com/kbukum/airelay/validation"
)

// Dispatcher is the part of dispatch.Dispatcher the bridge calls.
type Dispatcher interface {
	AskChat(ctx context.Context, message string) dispatch.Result
	TranslateWith(ctx context.Context, req translation.TranslateRequest) dispatch.Result
	Transcribe(ctx context.Context, audio []byte, language string) dispatch.Result
	MergeTranscripts(ctx context.Context, transcript string, audio []byte) dispatch.Result
	Providers() []string
	Health(ctx context.Context) []observability.Health
}

// Request bodies require their text key but accept an empty value.
type askRequest struct {
	Message *string `json:"message" validate:"required"`
}

type translateRequest struct {
	Text       *string `json:"text" validate:"required"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

// Bridge exposes the dispatch entry points under /api.
type Bridge struct {
	dispatcher Dispatcher
}

// NewBridge creates a Bridge over d.
func NewBridge(d Dispatcher) *Bridge {
	return &Bridge{dispatcher: d}
}

// Register mounts the bridge routes on r.
func (b *Bridge) Register(r gin.IRouter) {
	api := r.Group("/api")
	api.POST("/ask", b.Ask)
	api.POST("/translate", b.Translate)
	api.POST("/transcribe", b.Transcribe)
	api.POST("/merge", b.Merge)
}

// Ask handles POST /api/ask {"message": "..."}.
func (b *Bridge) Ask(c *gin.Context) {
	var req askRequest
	if !bindJSON(c, &req) {
		return
	}
	RespondResult(c, b.dispatcher.AskChat(c.Request.Context(), *req.Message))
}

// Translate handles POST /api/translate {"text", "source_lang"?, "target_lang"?}.
func (b *Bridge) Translate(c *gin.Context) {
	var req translateRequest
	if !bindJSON(c, &req) {
		return
	}
	RespondResult(c, b.dispatcher.TranslateWith(c.Request.Context(), translation.TranslateRequest{
		Text:       *req.Text,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
	}))
}

// Transcribe handles POST /api/transcribe with multipart "file" and "language".
func (b *Bridge) Transcribe(c *gin.Context) {
	audio, ok := readAudio(c)
	if !ok {
		return
	}
	RespondResult(c, b.dispatcher.Transcribe(c.Request.Context(), audio, c.PostForm("language")))
}

// Merge handles POST /api/merge with multipart "file" and "transcript".
func (b *Bridge) Merge(c *gin.Context) {
	audio, ok := readAudio(c)
	if !ok {
		return
	}
	RespondResult(c, b.dispatcher.MergeTranscripts(c.Request.Context(), c.PostForm("transcript"), audio))
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondWithError(c, bodyError(err, "body"))
		return false
	}
	if err := validation.Validate(dst); err != nil {
		RespondWithError(c, err)
		return false
	}
	return true
}

// readAudio reads the "file" part of a multipart upload. An empty part is
// passed on as-is.
func readAudio(c *gin.Context) ([]byte, bool) {
	fh, err := c.FormFile("file")
	if err != nil {
		RespondWithError(c, bodyError(err, "file"))
		return nil, false
	}

	f, err := fh.Open()
	if err != nil {
		RespondWithError(c, apperrors.InvalidInput("file", err.Error()))
		return nil, false
	}
	defer f.Close()

	audio, err := io.ReadAll(f)
	if err != nil {
		RespondWithError(c, bodyError(err, "file"))
		return nil, false
	}
	return audio, true
}

// bodyError maps a request-decoding failure to a 400, or 413 when the
// body cap was hit.
func bodyError(err error, field string) *apperrors.AppError {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "request body too large", http.StatusRequestEntityTooLarge).
			WithDetail("limit", maxErr.Limit)
	}
	if errors.Is(err, http.ErrMissingFile) {
		return apperrors.MissingField(field)
	}
	return apperrors.InvalidInput(field, err.Error())
}
