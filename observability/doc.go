// Package observability wires OpenTelemetry tracing and metrics for the
// dispatcher. Telemetry is off unless Config.Enabled is set; with it off the
// global no-op providers stay in place and every helper here is safe to call.
//
// Setup:
//
//	shutdown, err := observability.Setup(ctx, cfg.Telemetry)
//	defer shutdown(ctx)
//
// Provider calls:
//
//	metrics, err := observability.NewMetrics(observability.Meter("airelay"))
//	metrics.RecordOperation(ctx, "cerebras", "chat", "ok", duration)
//
// Health:
//
//	health := observability.NewServiceHealth("airelay", version.GetShortVersion())
//	health.AddComponent(observability.Health{Name: "deepl", Status: observability.HealthStatusUp})
package observability
