package httpclient

import (
	"context"
	"net/http"
)

// Header names injected into outbound requests.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
	HeaderAuthorization = "Authorization"
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
	accessTokenKey   struct{}
)

// WithRequestID returns a new context carrying the inbound request ID so it
// is forwarded on outbound calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID returns a new context carrying the correlation ID so it
// is forwarded on outbound calls.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// WithAccessToken returns a new context carrying an AniList OAuth access
// token. Viewer-scoped operations (AiringOnMyList, the onList filter) only
// resolve when the token reaches AniList as a bearer credential.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}

// AccessTokenFromContext returns the access token stored by WithAccessToken.
func AccessTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(accessTokenKey{}).(string)
	return token, ok && token != ""
}

// injectHeaders copies request metadata from the context onto the outbound
// request. An Authorization header already set by the caller wins over the
// context token.
func injectHeaders(ctx context.Context, req *http.Request) {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		req.Header.Set(HeaderRequestID, id)
	}
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok && id != "" {
		req.Header.Set(HeaderCorrelationID, id)
	}
	if token, ok := AccessTokenFromContext(ctx); ok && req.Header.Get(HeaderAuthorization) == "" {
		req.Header.Set(HeaderAuthorization, "Bearer "+token)
	}
}
