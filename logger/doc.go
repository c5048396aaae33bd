// Package logger provides structured logging for airelay using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields. Provider calls are logged
// with the provider, operation, duration, and error code; API keys are never
// handed to the logger. Use Redact when a secret has to be referred to.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.WithComponent("dispatch")
//	log.Info("chat completed", logger.Fields(logger.FieldProvider, "cerebras"))
package logger
