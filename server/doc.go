// Package server is the local HTTP bridge the UI shell talks to.
//
// Routes:
//
//	POST /api/ask         {"message": "..."}
//	POST /api/translate   {"text": "...", "source_lang"?: "KA", "target_lang"?: "EN-US"}
//	POST /api/transcribe  multipart: file, language
//	POST /api/merge       multipart: file, transcript
//	GET  /health
//	GET  /info
//
// Replies are {"data": {"text": "..."}} on success and
// {"error": {"code", "message", "retryable"}} on failure, with the HTTP
// status taken from the error code.
//
// The handler chain is Gin behind h2c, wrapped at the net/http level by
// access logging, CORS and a body size cap (server/middleware). Inside Gin
// run panic recovery, request ids and a span per request.
package server
