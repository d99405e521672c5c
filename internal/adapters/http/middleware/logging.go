package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/media-gateway/internal/platform/httpclient"
	"github.com/jsamuelsen11/media-gateway/internal/platform/logging"
)

// Logging returns middleware that logs request start and completion events
// and stores logger in the request context for logging.FromContext. The
// request and correlation ids reach these lines, and any other logger built
// by logging.New, as context attributes set by RequestID and CorrelationID.
//
// Completion is logged at INFO, WARN for 4xx, and ERROR for 5xx, with the
// matched chi route pattern so per-media paths group together.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := logging.WithLogger(r.Context(), logger)

			_, viewer := httpclient.AccessTokenFromContext(ctx)
			logger.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Bool("viewer", viewer),
			)

			if logger.Enabled(ctx, slog.LevelDebug) {
				logger.DebugContext(ctx, "request headers", HeadersAttr(r.Header))
			}

			cw := capture(w)
			next.ServeHTTP(cw, r.WithContext(ctx))

			logger.Log(ctx, completionLevel(cw.status), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(ctx, r)),
				slog.Int("status", cw.status),
				slog.Int64("bytes", cw.bytes),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func completionLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// routePattern returns the matched chi pattern, e.g. "/api/v1/media/{id}/stats",
// or the raw path when the request was not routed by chi.
func routePattern(ctx context.Context, r *http.Request) string {
	if rctx := chi.RouteContext(ctx); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}
