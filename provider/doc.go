// Package provider is the small generic framework every outbound adapter is
// built on.
//
// A provider answers Name and IsAvailable; a RequestResponse provider also
// executes one input into one output. Adapt bridges a backend provider with
// one pair of types to a domain provider with another, which is how the
// chat, translation, and transcription adapters are layered over the HTTP
// adapter.
//
// # Middleware
//
// Middleware[I, O] wraps a RequestResponse provider. Use Chain to compose:
//
//	wrapped := provider.Chain(
//	    provider.WithRecovery[In, Out](),
//	    provider.WithLogging[In, Out](log),
//	    provider.WithMetrics[In, Out](metrics),
//	    provider.WithTracing[In, Out]("airelay"),
//	)(rawProvider)
//
// The operation label used by the middleware is read from the context; set
// it with ContextWithOperation.
//
// # Registry
//
//	reg := provider.NewRegistry[provider.Provider]()
//	reg.Register(chat)
//	reg.List() // ["cerebras"]
package provider
