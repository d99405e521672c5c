package middleware

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/media-gateway/internal/platform/telemetry"
)

const scopeName = "github.com/jsamuelsen11/media-gateway/internal/adapters/http/middleware"

// OpenTelemetry continues the caller's W3C trace in a server span and
// records the server request metrics. Once chi has routed the request the
// span takes the route pattern as its name, so every /api/v1/media/{id}
// request shares one span name. A nil metrics records spans only.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	tracer := otel.GetTracerProvider().Tracer(scopeName)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			parent := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := tracer.Start(parent, r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					semconv.HTTPRequestMethodKey.String(r.Method),
					semconv.URLPathKey.String(r.URL.Path),
					semconv.UserAgentOriginalKey.String(r.UserAgent()),
				),
			)
			defer span.End()

			cw := capture(w)
			r = r.WithContext(ctx)
			next.ServeHTTP(cw, r)

			route := routePattern(ctx, r)
			finishSpan(span, r.Method, route, cw.status)
			recordServerMetrics(ctx, metrics, r.Method, route, time.Since(start), cw.status)
		})
	}
}

func finishSpan(span trace.Span, method, route string, status int) {
	span.SetName(method + " " + route)
	span.SetAttributes(
		semconv.HTTPRouteKey.String(route),
		semconv.HTTPResponseStatusCodeKey.Int(status),
	)
	if status >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, http.StatusText(status))
	}
}

func recordServerMetrics(ctx context.Context, m *telemetry.Metrics, method, route string, elapsed time.Duration, status int) {
	if m == nil {
		return
	}

	result := "success"
	if status >= http.StatusBadRequest {
		result = "error"
	}
	attrs := metric.WithAttributeSet(attribute.NewSet(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		semconv.HTTPRouteKey.String(route),
		telemetry.AttrResult.String(result),
	))
	m.ServerRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	m.ServerRequestTotal.Add(ctx, 1, attrs)
}
