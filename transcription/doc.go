// Package transcription is the speech-to-text adapter for the Groq
// OpenAI-compatible Whisper endpoint.
//
// # Usage
//
//	stt, err := transcription.New(transcription.Config{}, credential.NewEnvResolver())
//	text, err := stt.Transcribe(ctx, audio, "en")
//
// The audio bytes are uploaded unchanged as a multipart file part named
// recording.webm with MIME type audio/webm, after the model and language
// fields. The transcript is the "text" field of the JSON reply.
package transcription
