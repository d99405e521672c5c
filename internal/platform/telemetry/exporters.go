package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Exporter names accepted in telemetry.exporter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

var (
	// ErrUnsupportedExporter is returned for an exporter name Setup does not know.
	ErrUnsupportedExporter = errors.New("unsupported exporter")
	// ErrMissingEndpoint is returned when the otlp exporter has no collector URL.
	ErrMissingEndpoint = errors.New("otlp exporter requires an endpoint")
)

// target is where spans and metrics are sent. host is empty for stdout.
type target struct {
	exporter string
	host     string
	insecure bool
}

// parseTarget resolves the exporter name and collector URL
// ("http://otel-collector:4318") into a target. Plain http talks to the
// collector without TLS.
func parseTarget(exporter, endpoint string) (target, error) {
	switch exporter {
	case ExporterStdout:
		return target{exporter: exporter}, nil
	case ExporterOTLP:
	default:
		return target{}, fmt.Errorf("%w: %q", ErrUnsupportedExporter, exporter)
	}

	if endpoint == "" {
		return target{}, ErrMissingEndpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		// Bare host:port, as the OTLP exporters themselves accept.
		return target{exporter: exporter, host: endpoint, insecure: true}, nil
	}
	return target{exporter: exporter, host: u.Host, insecure: u.Scheme != "https"}, nil
}

func (t target) spanExporter(ctx context.Context) (sdktrace.SpanExporter, error) {
	if t.exporter == ExporterStdout {
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(t.host)}
	if t.insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return otlptracehttp.New(ctx, opts...)
}

func (t target) metricExporter(ctx context.Context) (sdkmetric.Exporter, error) {
	if t.exporter == ExporterStdout {
		return stdoutmetric.New()
	}
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(t.host)}
	if t.insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	return otlpmetrichttp.New(ctx, opts...)
}
