package middleware

import (
	"net/http"
	"strings"

	"github.com/jsamuelsen11/media-gateway/internal/platform/httpclient"
)

const bearerScheme = "bearer"

// BearerPassthrough returns middleware that lifts an inbound
// "Authorization: Bearer <token>" header into the request context, where
// the AniList client picks it up for viewer-scoped queries such as
// AiringOnMyList. Other schemes and empty tokens are ignored. The token is
// never validated here; AniList does that.
func BearerPassthrough() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token, ok := bearerToken(r.Header.Get(httpclient.HeaderAuthorization)); ok {
				r = r.WithContext(httpclient.WithAccessToken(r.Context(), token))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
