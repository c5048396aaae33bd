// Package dispatch holds the entry points the UI calls: AskChat, Translate,
// Transcribe and MergeTranscripts.
//
// Every entry point makes its outbound calls through the provider middleware
// chain (logging, metrics, tracing, panic recovery) under its own timeout,
// and folds the outcome into a Result. A Result never carries a Go error:
// the caller shows Result.Error to the user as-is and may branch on
// Result.Code.
package dispatch
