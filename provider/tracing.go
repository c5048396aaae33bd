package provider

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/airelay/errors"
	"github.com/kbukum/airelay/observability"
)

// WithTracing opens a client span named "{serviceName}.{provider}" around
// every call. Failed calls carry the error code, the retryable hint and,
// for non-2xx answers, the provider's HTTP status.
func WithTracing[I, O any](serviceName string) Middleware[I, O] {
	return func(inner RequestResponse[I, O]) RequestResponse[I, O] {
		return &tracedCall[I, O]{inner: inner, service: serviceName}
	}
}

type tracedCall[I, O any] struct {
	inner   RequestResponse[I, O]
	service string
}

func (c *tracedCall[I, O]) Name() string                         { return c.inner.Name() }
func (c *tracedCall[I, O]) IsAvailable(ctx context.Context) bool { return c.inner.IsAvailable(ctx) }

func (c *tracedCall[I, O]) Execute(ctx context.Context, input I) (O, error) {
	name := c.inner.Name()
	ctx, span := observability.StartSpan(ctx, c.service+"."+name, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	observability.SetSpanAttribute(ctx, observability.AttrServiceName, c.service)
	observability.SetSpanAttribute(ctx, observability.AttrProvider, name)
	observability.SetSpanAttribute(ctx, observability.AttrOperationName, OperationFromContext(ctx))

	out, err := c.inner.Execute(ctx, input)
	if err == nil {
		span.SetStatus(codes.Ok, "")
		return out, nil
	}

	observability.SetSpanError(ctx, err)
	observability.SetSpanAttribute(ctx, observability.AttrErrorCode, errorCode(err))
	if appErr, ok := errors.AsAppError(err); ok {
		observability.SetSpanAttribute(ctx, observability.AttrRetryable, appErr.Retryable)
		if status, ok := appErr.Details["status"].(int); ok {
			observability.SetSpanAttribute(ctx, observability.AttrHTTPStatus, status)
		}
		span.SetStatus(codes.Error, appErr.Message)
	} else {
		span.SetStatus(codes.Error, err.Error())
	}
	return out, err
}
