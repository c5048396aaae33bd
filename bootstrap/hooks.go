package bootstrap

import "context"

// Hook is a shutdown callback.
type Hook func(ctx context.Context) error

// OnStop registers hooks to run on shutdown. Hooks run in reverse order of
// registration, so resources are released in the opposite order they were
// acquired.
func (a *App) OnStop(hooks ...Hook) {
	a.onStop = append(a.onStop, hooks...)
}
