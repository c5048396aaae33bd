package provider

import "context"

// Closeable is optionally implemented by providers that hold resources
// requiring explicit cleanup, such as pooled HTTP connections.
type Closeable interface {
	Close(ctx context.Context) error
}

// CloseAll closes every provider that implements Closeable and returns the
// first error encountered.
func CloseAll(ctx context.Context, providers ...Provider) error {
	var first error
	for _, p := range providers {
		if c, ok := p.(Closeable); ok {
			if err := c.Close(ctx); err != nil && first == nil {
				first = err
			}
		}
	}
	return first
}
