package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/media-gateway/internal/platform/logging"
)

const redacted = "[REDACTED]"

// HeadersAttr renders h as a "headers" log group, one attribute per header
// in name order, values comma-joined. Headers in logging.SensitiveHeaders
// (the caller's AniList bearer token among them) appear as "[REDACTED]".
func HeadersAttr(h http.Header) slog.Attr {
	attrs := make([]slog.Attr, 0, len(h))
	for _, name := range slices.Sorted(maps.Keys(h)) {
		value := redacted
		if !logging.SensitiveHeaders[strings.ToLower(name)] {
			value = strings.Join(h[name], ",")
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return slog.Attr{Key: "headers", Value: slog.GroupValue(attrs...)}
}
