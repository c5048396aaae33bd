// Package envelope is the one pipeline every provider adapter runs:
// build the request, send it, check the status, decode the JSON envelope,
// and extract the first textual result.
//
//	chat := envelope.Bind(transport, "cerebras", buildChat, func(r chatResponse) (string, error) {
//	    choice, err := envelope.First("cerebras", r.Choices, "choices")
//	    if err != nil {
//	        return "", err
//	    }
//	    return choice.Message.Content, nil
//	})
//
// Failures at each stage are mapped onto the errors package so that a
// caller can switch on the code without knowing which adapter it used.
package envelope

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"reflect"

	"github.com/kbukum/airelay/errors"
	"github.com/kbukum/airelay/httpclient"
	"github.com/kbukum/airelay/provider"
	"github.com/kbukum/airelay/validation"
)

// Transport is the HTTP provider the pipeline sends through.
type Transport = provider.RequestResponse[httpclient.Request, *httpclient.Response]

// BuildFunc turns a domain input into an outbound request. Credential and
// prompt lookups happen here, so their failures stop the call before any
// network traffic.
type BuildFunc[I any] func(ctx context.Context, input I) (httpclient.Request, error)

// ExtractFunc pulls the result out of a decoded envelope.
type ExtractFunc[E, O any] func(env E) (O, error)

// Bind composes the pipeline for one provider whose result is text.
func Bind[I, E any](transport Transport, name string, build BuildFunc[I], extract ExtractFunc[E, string]) provider.RequestResponse[I, string] {
	return BindTyped[I, E, string](transport, name, build, extract)
}

// BindTyped is Bind for adapters that return more than the text, such as
// a translation together with its detected source language.
func BindTyped[I, E, O any](transport Transport, name string, build BuildFunc[I], extract ExtractFunc[E, O]) provider.RequestResponse[I, O] {
	classified := &classifyingTransport{inner: transport, name: name}
	return provider.Adapt[I, O, httpclient.Request, *httpclient.Response](
		classified,
		name,
		build,
		func(resp *httpclient.Response) (O, error) {
			env, err := Decode[E](name, resp.Body)
			if err != nil {
				var zero O
				return zero, err
			}
			return extract(env)
		},
	)
}

// Decode parses body as JSON into E and checks the `validate` tags on the
// envelope. A body that is not JSON, or that lacks a required key, is a
// DECODE_ERROR. Required keys are declared as pointers or slices so that a
// present but empty value still passes.
func Decode[E any](name string, body []byte) (E, error) {
	var env E
	if err := json.Unmarshal(body, &env); err != nil {
		var zero E
		return zero, errors.DecodeError(name, err)
	}
	if reflect.TypeOf(env) != nil && reflect.TypeOf(env).Kind() == reflect.Struct {
		if err := validation.Validate(&env); err != nil {
			var zero E
			return zero, errors.DecodeError(name, err)
		}
	}
	return env, nil
}

// First returns the first element of items, or EMPTY_RESPONSE.
func First[T any](name string, items []T, what string) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, errors.EmptyResponse(name, what)
	}
	return items[0], nil
}

// Classify maps an error from the HTTP transport onto an AppError.
// Errors that already are AppErrors are returned unchanged.
func Classify(name string, err error) error {
	if err == nil {
		return nil
	}
	if appErr, ok := errors.AsAppError(err); ok {
		return appErr
	}

	var httpErr *httpclient.Error
	if !stderrors.As(err, &httpErr) {
		return errors.TransportError(name, err)
	}

	switch {
	case httpErr.IsStatus():
		return errors.ProviderError(name, httpErr.StatusCode, string(httpErr.Body)).WithCause(err)
	case httpErr.Code == httpclient.ErrCodeTimeout:
		return errors.Timeout(name + " request").WithCause(err)
	case httpErr.Code == httpclient.ErrCodeValidation:
		return errors.Internal(err)
	default:
		return errors.TransportError(name, err)
	}
}

type classifyingTransport struct {
	inner Transport
	name  string
}

func (c *classifyingTransport) Name() string                         { return c.name }
func (c *classifyingTransport) IsAvailable(ctx context.Context) bool { return c.inner.IsAvailable(ctx) }

func (c *classifyingTransport) Execute(ctx context.Context, req httpclient.Request) (*httpclient.Response, error) {
	resp, err := c.inner.Execute(ctx, req)
	if err != nil {
		return nil, Classify(c.name, err)
	}
	return resp, nil
}
