package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kbukum/airelay/config"
	"github.com/kbukum/airelay/credential"
	"github.com/kbukum/airelay/dispatch"
	"github.com/kbukum/airelay/llm"
	"github.com/kbukum/airelay/logger"
	"github.com/kbukum/airelay/observability"
	"github.com/kbukum/airelay/prompt"
	"github.com/kbukum/airelay/server"
	"github.com/kbukum/airelay/transcription"
	"github.com/kbukum/airelay/translation"
)

// App owns the process lifecycle: logger, telemetry, the three provider
// adapters and the dispatcher over them.
//
// Example:
//
//	cfg, _ := config.Load()
//	app, _ := bootstrap.NewApp(cfg)
//	app.RunTask(ctx, func(ctx context.Context, d *dispatch.Dispatcher) error {
//	    res := d.AskChat(ctx, "hello")
//	    ...
//	})
type App struct {
	Name       string
	Version    string
	Cfg        *config.Config
	Logger     *logger.Logger
	Metrics    *observability.Metrics
	Dispatcher *dispatch.Dispatcher

	opts            *appOptions
	gracefulTimeout time.Duration
	onStop          []Hook
}

// NewApp applies defaults, validates cfg and initializes the logger.
// Adapters are built by Run and RunTask.
func NewApp(cfg *config.Config, opts ...Option) (*App, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	o := resolveOptions(opts)
	app := &App{
		Name:            cfg.Name,
		Version:         cfg.Telemetry.ServiceVersion,
		Cfg:             cfg,
		opts:            o,
		gracefulTimeout: 15 * time.Second,
	}
	if o.gracefulTimeout != nil {
		app.gracefulTimeout = *o.gracefulTimeout
	}

	if o.logger != nil {
		app.Logger = o.logger
	} else {
		logger.Init(cfg.Logging)
		app.Logger = logger.GetGlobalLogger()
	}
	return app, nil
}

// Run serves the HTTP bridge until ctx is canceled or a shutdown signal
// arrives, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	if err := a.startup(ctx); err != nil {
		return err
	}

	srv := server.New(a.Cfg.Server, a.Logger)
	srv.ApplyMiddleware(a.Name, a.Metrics)
	srv.RegisterDefaultEndpoints(a.Name, a.Dispatcher.Health, a.Dispatcher.Providers)
	server.NewBridge(a.Dispatcher).Register(srv.GinEngine())
	srv.LogRoutes()

	if err := srv.Start(ctx); err != nil {
		_ = a.stop()
		return err
	}
	// Registered last so it runs first: stop taking requests before the
	// adapters close.
	a.OnStop(srv.Stop)

	a.Logger.Info("application ready", logger.Fields("addr", srv.Addr()))
	a.WaitForSignal(ctx)

	return a.stop()
}

// RunTask runs one finite task against the dispatcher, canceling it on
// SIGINT/SIGTERM, then shuts down. CLI commands use this.
func (a *App) RunTask(ctx context.Context, task func(ctx context.Context, d *dispatch.Dispatcher) error) error {
	if err := a.startup(ctx); err != nil {
		return err
	}

	taskCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case sig := <-sigCh:
			a.Logger.Info("received signal, canceling task", logger.Fields("signal", sig.String()))
			cancel()
		case <-taskCtx.Done():
		}
	}()

	taskErr := task(taskCtx, a.Dispatcher)

	if stopErr := a.stop(); stopErr != nil && taskErr == nil {
		return stopErr
	}
	return taskErr
}

// startup installs telemetry and builds the dispatcher.
func (a *App) startup(ctx context.Context) error {
	start := time.Now()
	a.Logger.Debug("starting application", logger.Fields("name", a.Name, "version", a.Version))

	dopts := []dispatch.Option{
		dispatch.WithLogger(a.Logger),
		dispatch.WithTimeouts(a.Cfg.Timeouts),
		dispatch.WithMergeConfig(a.Cfg.Merge),
	}

	if a.Cfg.Telemetry.Enabled {
		shutdown, err := observability.Setup(ctx, a.Cfg.Telemetry)
		if err != nil {
			return fmt.Errorf("telemetry: %w", err)
		}
		a.OnStop(Hook(shutdown))

		metrics, err := observability.NewMetrics(observability.Meter(a.Name))
		if err != nil {
			return fmt.Errorf("telemetry: metrics: %w", err)
		}
		a.Metrics = metrics
		dopts = append(dopts, dispatch.WithMetrics(metrics), dispatch.WithTracing(a.Name))
	}

	d, err := a.buildDispatcher(dopts)
	if err != nil {
		_ = a.stop()
		return err
	}
	a.Dispatcher = d
	a.OnStop(d.Close)

	for _, h := range d.Health(ctx) {
		if h.Status != observability.HealthStatusUp {
			a.Logger.Warn("provider not configured", logger.Fields("provider", h.Name, "status", string(h.Status)))
		}
	}

	a.Logger.Debug("application started", logger.DurationFields("startup", time.Since(start)))
	return nil
}

func (a *App) buildDispatcher(opts []dispatch.Option) (*dispatch.Dispatcher, error) {
	creds := a.opts.credentials
	if creds == nil {
		creds = credential.NewEnvResolver()
	}
	prompts := a.opts.prompts
	if prompts == nil {
		prompts = prompt.NewFileLoader(a.Cfg.Prompt)
	}

	chat, err := llm.New(a.Cfg.Chat, creds, prompts, a.opts.httpOptions...)
	if err != nil {
		return nil, err
	}
	translator, err := translation.New(a.Cfg.Translation, creds, a.opts.httpOptions...)
	if err != nil {
		return nil, err
	}
	transcriber, err := transcription.New(a.Cfg.Transcription, creds, a.opts.httpOptions...)
	if err != nil {
		return nil, err
	}
	return dispatch.New(chat, translator, transcriber, opts...)
}

// WaitForSignal blocks until an OS interrupt/term signal or context cancellation.
func (a *App) WaitForSignal(ctx context.Context) os.Signal {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		a.Logger.Info("received shutdown signal", logger.Fields("signal", sig.String()))
		return sig
	case <-ctx.Done():
		a.Logger.Debug("context canceled, shutting down")
		return nil
	}
}

// stop runs the OnStop hooks in reverse registration order within the
// graceful timeout. Every hook runs; the first error is returned.
func (a *App) stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.gracefulTimeout)
	defer cancel()

	hooks := a.onStop
	a.onStop = nil

	var firstErr error
	for i := len(hooks) - 1; i >= 0; i-- {
		if err := hooks[i](ctx); err != nil {
			a.Logger.Error("shutdown hook failed", logger.Fields("error", err.Error()))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	a.Logger.Debug("application shutdown complete")
	return firstErr
}
