package transcription

// TranscriptionRequest holds parameters for a transcription call.
type TranscriptionRequest struct {
	// Audio is uploaded as-is. No size or format check is made.
	Audio []byte `json:"-"`
	// Language is the spoken language tag (e.g. "en", "ka"). Sent even when empty.
	Language string `json:"language,omitempty"`
	// Model overrides the configured model.
	Model string `json:"model,omitempty"`
}

// transcriptionResponse is the reply envelope. Text is a pointer so that a
// reply without the field is told apart from an empty transcript.
type transcriptionResponse struct {
	Text *string `json:"text" validate:"required"`
}
