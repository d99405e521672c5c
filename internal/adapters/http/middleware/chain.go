// Package middleware is the gateway's inbound HTTP pipeline. Gateway
// installs it in this order:
//
//	RequestID → CorrelationID → Recovery → BearerPassthrough → OpenTelemetry → Logging → Timeout → Handler
//
// RequestID, CorrelationID, and BearerPassthrough also seed the context
// values the AniList client forwards on outbound calls. Chain composes any
// other selection.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/media-gateway/internal/platform/telemetry"
)

// Chain composes multiple middleware into a single middleware. The first
// argument becomes the outermost middleware (executed first on request,
// last on response):
//
//	Chain(Recovery, RequestID, Logging)(handler)
//
// is equivalent to:
//
//	Recovery(RequestID(Logging(handler)))
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}

// GatewayOptions configures the inbound pipeline built by Gateway.
type GatewayOptions struct {
	Logger *slog.Logger
	// Metrics may be nil when telemetry is disabled.
	Metrics *telemetry.Metrics
	// RequestTimeout bounds each request, AniList calls included. Zero
	// disables the timeout.
	RequestTimeout time.Duration
}

// Gateway returns the gateway's inbound pipeline. Recovery runs inside
// RequestID and CorrelationID so panic logs and the 500 reply carry both
// IDs. Install it with chi's Use so Logging and OpenTelemetry see the
// matched route pattern.
func Gateway(opts GatewayOptions) func(http.Handler) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	mws := []func(http.Handler) http.Handler{
		RequestID(),
		CorrelationID(),
		Recovery(logger),
		BearerPassthrough(),
		OpenTelemetry(opts.Metrics),
		Logging(logger),
	}
	if opts.RequestTimeout > 0 {
		mws = append(mws, Timeout(opts.RequestTimeout))
	}
	return Chain(mws...)
}
