// Package bootstrap wires a loaded configuration into a running airelay
// process.
//
// NewApp initializes logging. Run and RunTask then install telemetry when
// enabled, build the chat, translation and transcription adapters over a
// shared credential resolver, and put the dispatcher in front of them.
// Run serves the HTTP bridge until a shutdown signal; RunTask executes a
// single CLI operation. Both release resources through OnStop hooks.
package bootstrap
