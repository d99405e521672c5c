package telemetry_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/media-gateway/internal/platform/config"
	"github.com/jsamuelsen11/media-gateway/internal/platform/telemetry"
)

func telemetryConfig(exporter, endpoint string) config.TelemetryConfig {
	return config.TelemetryConfig{
		Enabled:     true,
		Exporter:    exporter,
		Endpoint:    endpoint,
		ServiceName: "media-gateway-test",
	}
}

func TestSetup_Disabled(t *testing.T) {
	t.Parallel()

	p, err := telemetry.Setup(context.Background(), config.TelemetryConfig{Exporter: "bogus"})
	if err != nil {
		t.Fatalf("Setup(disabled) error = %v", err)
	}
	if p.Tracer != nil || p.Meter != nil || p.Metrics != nil {
		t.Errorf("Setup(disabled) = %+v, want empty providers", p)
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

// Setup replaces the OTEL globals, so these tests run serially.
func TestSetup_Stdout(t *testing.T) {
	ctx := context.Background()

	p, err := telemetry.Setup(ctx, telemetryConfig(telemetry.ExporterStdout, ""))
	if err != nil {
		t.Fatalf("Setup(stdout) error = %v", err)
	}
	t.Cleanup(func() {
		if err := p.Shutdown(ctx); err != nil {
			t.Errorf("Shutdown() error = %v", err)
		}
	})

	if p.Tracer == nil || p.Meter == nil || p.Metrics == nil {
		t.Fatalf("Setup(stdout) = %+v, want every provider set", p)
	}
	if otel.GetTracerProvider() != p.Tracer {
		t.Error("global TracerProvider was not replaced")
	}
	if otel.GetMeterProvider() != p.Meter {
		t.Error("global MeterProvider was not replaced")
	}

	fields := otel.GetTextMapPropagator().Fields()
	for _, want := range []string{"traceparent", "baggage"} {
		if !slices.Contains(fields, want) {
			t.Errorf("propagator fields = %v, missing %q", fields, want)
		}
	}
}

func TestSetup_OTLP(t *testing.T) {
	ctx := context.Background()

	p, err := telemetry.Setup(ctx, telemetryConfig(telemetry.ExporterOTLP, "http://localhost:4318"))
	if err != nil {
		t.Fatalf("Setup(otlp) error = %v", err)
	}
	// No collector listens in unit tests, so the final flush may fail.
	t.Cleanup(func() { _ = p.Shutdown(ctx) })

	if p.Tracer == nil || p.Meter == nil || p.Metrics == nil {
		t.Fatalf("Setup(otlp) = %+v, want every provider set", p)
	}
}

func TestSetup_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		exporter string
		endpoint string
		want     error
	}{
		{name: "unknown exporter", exporter: "jaeger", want: telemetry.ErrUnsupportedExporter},
		{name: "empty exporter", exporter: "", want: telemetry.ErrUnsupportedExporter},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP, want: telemetry.ErrMissingEndpoint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := telemetry.Setup(context.Background(), telemetryConfig(tt.exporter, tt.endpoint))
			if !errors.Is(err, tt.want) {
				t.Fatalf("Setup() error = %v, want %v", err, tt.want)
			}
			if p != nil {
				t.Errorf("Setup() providers = %+v, want nil on error", p)
			}
		})
	}
}

func TestProviders_ShutdownNil(t *testing.T) {
	t.Parallel()

	var p *telemetry.Providers
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() on nil error = %v", err)
	}
}

func TestNewMetrics_RecordsIntoProvider(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	m, err := telemetry.NewMetrics(mp, "mediaq")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	attrs := metric.WithAttributes(telemetry.AttrOperation.String("SearchMedia"), telemetry.AttrResult.String("success"))
	m.GraphQLOperationTotal.Add(ctx, 1, attrs)
	m.GraphQLOperationDuration.Record(ctx, 0.25, attrs)
	m.ServerRequestTotal.Add(ctx, 1)
	m.ServerRequestDuration.Record(ctx, 0.01)
	m.ClientRequestTotal.Add(ctx, 1)
	m.ClientRequestDuration.Record(ctx, 0.2)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(rm.ScopeMetrics) != 1 {
		t.Fatalf("got %d scopes, want 1", len(rm.ScopeMetrics))
	}

	scope := rm.ScopeMetrics[0]
	if want := "github.com/jsamuelsen11/media-gateway/mediaq"; scope.Scope.Name != want {
		t.Errorf("scope = %q, want %q", scope.Scope.Name, want)
	}

	var names []string
	for _, m := range scope.Metrics {
		names = append(names, m.Name)
	}
	slices.Sort(names)
	want := []string{
		"graphql.operation.duration",
		"graphql.operation.total",
		"http.client.request.duration",
		"http.client.request.total",
		"http.server.request.duration",
		"http.server.request.total",
	}
	if !slices.Equal(names, want) {
		t.Errorf("metrics = %v, want %v", names, want)
	}
}

func TestNewMetrics_NoopProvider(t *testing.T) {
	t.Parallel()

	m, err := telemetry.NewMetrics(noop.NewMeterProvider(), "mediaq")
	if err != nil {
		t.Fatalf("NewMetrics(noop) error = %v", err)
	}
	m.GraphQLOperationTotal.Add(context.Background(), 1,
		metric.WithAttributes(telemetry.AttrOperation.String("SearchMedia")))
}
