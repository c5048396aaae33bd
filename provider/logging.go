package provider

import (
	"context"
	"time"

	"github.com/kbukum/airelay/errors"
	"github.com/kbukum/airelay/logger"
)

// WithLogging returns a Middleware that logs each Execute call with the
// provider, operation, duration, and on failure the error code and upstream
// status. Inputs and outputs are never logged.
func WithLogging[I, O any](log *logger.Logger) Middleware[I, O] {
	return func(inner RequestResponse[I, O]) RequestResponse[I, O] {
		return &loggingRR[I, O]{inner: inner, log: log}
	}
}

type loggingRR[I, O any] struct {
	inner RequestResponse[I, O]
	log   *logger.Logger
}

func (l *loggingRR[I, O]) Name() string                         { return l.inner.Name() }
func (l *loggingRR[I, O]) IsAvailable(ctx context.Context) bool { return l.inner.IsAvailable(ctx) }

func (l *loggingRR[I, O]) Execute(ctx context.Context, input I) (O, error) {
	start := time.Now()
	output, err := l.inner.Execute(ctx, input)

	fields := logger.DurationFields(OperationFromContext(ctx), time.Since(start))
	fields[logger.FieldProvider] = l.inner.Name()

	log := l.log.WithContext(ctx)
	if err != nil {
		fields[logger.FieldError] = err.Error()
		if appErr, ok := errors.AsAppError(err); ok {
			fields[logger.FieldErrorCode] = string(appErr.Code)
			if status, ok := appErr.Details["status"]; ok {
				fields[logger.FieldStatusCode] = status
			}
		}
		log.Error("provider call failed", fields)
	} else {
		log.Info("provider call completed", fields)
	}

	return output, err
}
