package provider

import (
	"context"
	"fmt"

	"github.com/kbukum/airelay/errors"
)

// Middleware transforms a RequestResponse provider by wrapping it.
// The returned provider typically delegates to the original while
// adding cross-cutting behavior (logging, metrics, tracing, etc.).
type Middleware[I, O any] func(RequestResponse[I, O]) RequestResponse[I, O]

// Chain composes multiple middlewares into one. Middlewares are applied
// in order: the first middleware is outermost (executes first on the
// way in, last on the way out).
//
// Chain(a, b, c)(provider) is equivalent to a(b(c(provider))).
func Chain[I, O any](middlewares ...Middleware[I, O]) Middleware[I, O] {
	return func(inner RequestResponse[I, O]) RequestResponse[I, O] {
		for i := len(middlewares) - 1; i >= 0; i-- {
			inner = middlewares[i](inner)
		}
		return inner
	}
}

// WithRecovery returns a Middleware that turns a panic inside Execute into
// an INTERNAL_ERROR app error instead of unwinding into the caller.
func WithRecovery[I, O any]() Middleware[I, O] {
	return func(inner RequestResponse[I, O]) RequestResponse[I, O] {
		return &recoveryRR[I, O]{inner: inner}
	}
}

type recoveryRR[I, O any] struct {
	inner RequestResponse[I, O]
}

func (r *recoveryRR[I, O]) Name() string                         { return r.inner.Name() }
func (r *recoveryRR[I, O]) IsAvailable(ctx context.Context) bool { return r.inner.IsAvailable(ctx) }

func (r *recoveryRR[I, O]) Execute(ctx context.Context, input I) (out O, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			var zero O
			out = zero
			err = errors.Internal(fmt.Errorf("%s panicked: %v", r.inner.Name(), rec)).
				WithDetail("provider", r.inner.Name())
		}
	}()
	return r.inner.Execute(ctx, input)
}
