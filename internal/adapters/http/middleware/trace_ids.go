package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/media-gateway/internal/platform/httpclient"
	"github.com/jsamuelsen11/media-gateway/internal/platform/logging"
)

// maxTraceIDLen caps inbound request and correlation ids. Longer or
// non-printable values are replaced rather than forwarded to AniList.
const maxTraceIDLen = 128

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores id for the gateway, for outbound AniList calls
// (X-Request-ID), and as the request_id log attribute.
func WithRequestID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, requestIDKey{}, id)
	ctx = logging.WithAttrs(ctx, slog.String("request_id", id))
	return httpclient.WithRequestID(ctx, id)
}

// RequestIDFromContext returns the request id, or "" outside a request.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithCorrelationID is WithRequestID for X-Correlation-ID and the
// correlation_id log attribute.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, correlationIDKey{}, id)
	ctx = logging.WithAttrs(ctx, slog.String("correlation_id", id))
	return httpclient.WithCorrelationID(ctx, id)
}

// CorrelationIDFromContext returns the correlation id, or "" outside a
// request.
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// RequestID reuses a well-formed X-Request-ID or mints a UUIDv7, which sorts
// by arrival time in logs. The id is echoed on the response.
func RequestID() func(http.Handler) http.Handler {
	return traceID(httpclient.HeaderRequestID, WithRequestID, func(*http.Request) string {
		return uuid.Must(uuid.NewV7()).String()
	})
}

// CorrelationID reuses a well-formed X-Correlation-ID or falls back to the
// request id, so it must run after RequestID.
func CorrelationID() func(http.Handler) http.Handler {
	return traceID(httpclient.HeaderCorrelationID, WithCorrelationID, func(r *http.Request) string {
		return RequestIDFromContext(r.Context())
	})
}

func traceID(
	header string,
	store func(context.Context, string) context.Context,
	fallback func(*http.Request) string,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(header)
			if !validTraceID(id) {
				id = fallback(r)
			}
			w.Header().Set(header, id)
			next.ServeHTTP(w, r.WithContext(store(r.Context(), id)))
		})
	}
}

// validTraceID accepts 1 to maxTraceIDLen bytes of printable ASCII.
func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLen {
		return false
	}
	for i := range len(id) {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}
