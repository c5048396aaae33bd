package provider

import "context"

// Adapt presents inner, which speaks BI and BO, as a provider of I and O
// under the given name. build runs before inner and decode after it; the
// first error ends the call. Availability is inner's.
func Adapt[I, O, BI, BO any](
	inner RequestResponse[BI, BO],
	name string,
	build func(ctx context.Context, input I) (BI, error),
	decode func(output BO) (O, error),
) RequestResponse[I, O] {
	return &mapped[I, O, BI, BO]{inner: inner, name: name, build: build, decode: decode}
}

type mapped[I, O, BI, BO any] struct {
	inner  RequestResponse[BI, BO]
	name   string
	build  func(context.Context, I) (BI, error)
	decode func(BO) (O, error)
}

func (m *mapped[I, O, BI, BO]) Name() string { return m.name }

func (m *mapped[I, O, BI, BO]) IsAvailable(ctx context.Context) bool {
	return m.inner.IsAvailable(ctx)
}

func (m *mapped[I, O, BI, BO]) Execute(ctx context.Context, input I) (O, error) {
	var out O
	req, err := m.build(ctx, input)
	if err != nil {
		return out, err
	}
	resp, err := m.inner.Execute(ctx, req)
	if err != nil {
		return out, err
	}
	return m.decode(resp)
}
