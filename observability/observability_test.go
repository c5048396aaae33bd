package observability

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric/noop"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// withRecorder installs an in-memory tracer provider for the duration of a test.
func withRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
	return rec
}

func attrValue(attrs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Enabled {
		t.Error("telemetry must stay disabled by default")
	}
	if cfg.ServiceName != "airelay" {
		t.Errorf("expected ServiceName 'airelay', got %s", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected Endpoint 'localhost:4318', got %s", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected SampleRate 1.0, got %f", cfg.SampleRate)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected Interval 15s, got %v", cfg.Interval)
	}
}

func TestSetup_Disabled(t *testing.T) {
	prev := otel.GetTracerProvider()

	shutdown, err := Setup(context.Background(), Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("no-op shutdown returned %v", err)
	}
	if otel.GetTracerProvider() != prev {
		t.Error("disabled setup must not replace the global tracer provider")
	}
}

func TestSamplerFor(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{1.0, "AlwaysOnSampler"},
		{2.0, "AlwaysOnSampler"},
		{0, "AlwaysOffSampler"},
		{-1, "AlwaysOffSampler"},
		{0.25, "TraceIDRatioBased{0.25}"},
	}
	for _, tt := range tests {
		got := samplerFor(tt.rate).Description()
		if !strings.Contains(got, tt.want) {
			t.Errorf("samplerFor(%v) = %q, expected it to contain %q", tt.rate, got, tt.want)
		}
	}
}

func TestNewResource(t *testing.T) {
	res, err := newResource("airelay", "1.2.3", "test")
	if err != nil {
		t.Fatalf("newResource error: %v", err)
	}
	v, ok := attrValue(res.Attributes(), "service.name")
	if !ok || v.AsString() != "airelay" {
		t.Errorf("expected service.name=airelay, got %v", v)
	}
	v, ok = attrValue(res.Attributes(), "environment")
	if !ok || v.AsString() != "test" {
		t.Errorf("expected environment=test, got %v", v)
	}
}

func TestNewMetrics(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	metrics, err := NewMetrics(meter)
	if err != nil {
		t.Fatalf("unexpected error creating metrics: %v", err)
	}

	ctx := context.Background()
	metrics.RecordRequestStart(ctx)
	metrics.RecordRequestEnd(ctx, "/api/ask", "POST", 200, 100*time.Millisecond)
	metrics.RecordOperation(ctx, "cerebras", "chat", "ok", 50*time.Millisecond)
	metrics.RecordError(ctx, "PROVIDER_ERROR", "deepl")
}

func TestNewOperationContext(t *testing.T) {
	oc := NewOperationContext("airelay", "POST", "/api/ask", "req-1", nil)

	if oc.ServiceName != "airelay" {
		t.Errorf("expected ServiceName 'airelay', got %s", oc.ServiceName)
	}
	if oc.Route != "/api/ask" || oc.Method != "POST" {
		t.Errorf("unexpected route %s %s", oc.Method, oc.Route)
	}
	if oc.RequestID != "req-1" {
		t.Errorf("expected RequestID 'req-1', got %s", oc.RequestID)
	}
	if oc.StartTime.IsZero() {
		t.Error("expected StartTime to be set")
	}
}

func TestOperationContextFromContext(t *testing.T) {
	oc := NewOperationContext("airelay", "POST", "/api/ask", "req-1", nil)
	ctx := WithOperationContext(context.Background(), oc)

	if OperationContextFromContext(ctx) != oc {
		t.Fatal("expected operation context from context")
	}
	if OperationContextFromContext(context.Background()) != nil {
		t.Error("expected nil when operation context not set")
	}
}

func TestOperationContext_Duration(t *testing.T) {
	oc := NewOperationContext("airelay", "GET", "/health", "", nil)
	oc.StartTime = time.Now().Add(-50 * time.Millisecond)

	duration := oc.Duration()
	if duration < 45*time.Millisecond || duration > 500*time.Millisecond {
		t.Errorf("expected duration around 50ms, got %v", duration)
	}
}

func TestOperationContext_RecordsSpan(t *testing.T) {
	rec := withRecorder(t)
	metrics, _ := NewMetrics(noop.NewMeterProvider().Meter("test"))

	oc := NewOperationContext("airelay", "POST", "/api/translate", "req-7", metrics)
	ctx, span := oc.StartSpanForOperation(context.Background(), SpanBridgeRequest)
	oc.EndOperation(ctx, span, 502, errors.New("deepl API error"))

	spans := rec.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 ended span, got %d", len(spans))
	}
	s := spans[0]
	if s.Name() != SpanBridgeRequest {
		t.Errorf("expected span name %q, got %q", SpanBridgeRequest, s.Name())
	}
	if v, ok := attrValue(s.Attributes(), AttrRequestID); !ok || v.AsString() != "req-7" {
		t.Errorf("expected request id attribute, got %v", v)
	}
	if v, ok := attrValue(s.Attributes(), AttrHTTPStatus); !ok || v.AsInt64() != 502 {
		t.Errorf("expected status 502 attribute, got %v", v)
	}
	if len(s.Events()) == 0 {
		t.Error("expected the error to be recorded as a span event")
	}
}

func TestSetSpanAttribute(t *testing.T) {
	rec := withRecorder(t)

	ctx, span := StartSpan(context.Background(), SpanProviderCall)
	SetSpanAttribute(ctx, AttrProvider, "groq")
	SetSpanAttribute(ctx, AttrHTTPStatus, 401)
	SetSpanAttribute(ctx, "retryable", false)
	SetSpanAttribute(ctx, "ignored", struct{}{})
	SetSpanError(ctx, errors.New("invalid api key"))
	span.End()

	s := rec.Ended()[0]
	if v, ok := attrValue(s.Attributes(), AttrProvider); !ok || v.AsString() != "groq" {
		t.Errorf("expected provider attribute, got %v", v)
	}
	if v, ok := attrValue(s.Attributes(), AttrHTTPStatus); !ok || v.AsInt64() != 401 {
		t.Errorf("expected status attribute, got %v", v)
	}
	if _, ok := attrValue(s.Attributes(), "ignored"); ok {
		t.Error("unsupported attribute types must be skipped")
	}
}

func TestSetSpanAttributeNoSpan(t *testing.T) {
	// must not panic without a span in context
	SetSpanAttribute(context.Background(), "key", "value")
	SetSpanError(context.Background(), errors.New("x"))
}

func TestServiceHealth_AddComponent(t *testing.T) {
	sh := NewServiceHealth("airelay", "1.0.0")
	if sh.Status != HealthStatusUp {
		t.Errorf("expected status 'up', got %s", sh.Status)
	}

	sh.AddComponent(Health{Name: "cerebras", Status: HealthStatusUp})
	if sh.Status != HealthStatusUp {
		t.Errorf("expected status 'up' after healthy component, got %s", sh.Status)
	}

	sh.AddComponent(Health{Name: "deepl", Status: HealthStatusDegraded, Message: "credential missing"})
	if sh.Status != HealthStatusDegraded {
		t.Errorf("expected status 'degraded', got %s", sh.Status)
	}

	sh.AddComponent(Health{Name: "groq", Status: HealthStatusDown})
	sh.AddComponent(Health{Name: "other", Status: HealthStatusDegraded})
	if sh.Status != HealthStatusDown {
		t.Errorf("expected 'down' not overridden by 'degraded', got %s", sh.Status)
	}
	if len(sh.Components) != 4 {
		t.Errorf("expected 4 components, got %d", len(sh.Components))
	}
}

func TestInitTracer(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	for _, rate := range []float64{1.0, 0.0, 0.5} {
		cfg := Config{ServiceName: "test", Endpoint: "localhost:4318", Insecure: true, SampleRate: rate}
		tp, err := InitTracer(context.Background(), cfg)
		if err != nil {
			t.Fatalf("InitTracer(rate=%v) error: %v", rate, err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		_ = tp.Shutdown(ctx)
		cancel()
	}
}

func TestProviderHealth(t *testing.T) {
	if h := ProviderHealth("groq", true); h.Status != HealthStatusUp || h.Name != "groq" {
		t.Errorf("expected up, got %+v", h)
	}
	if h := ProviderHealth("deepl", false); h.Status != HealthStatusDegraded || h.Message == "" {
		t.Errorf("expected degraded with message, got %+v", h)
	}
}
