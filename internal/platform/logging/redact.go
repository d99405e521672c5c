package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists, lowercased, the HTTP headers that carry
// credentials. The inbound Authorization header holds the caller's AniList
// access token. The HTTP middleware's header dump masks the same set.
var SensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"x-api-key":           true,
	"cookie":              true,
	"set-cookie":          true,
}

var (
	// sensitiveFields are masked wherever they appear as attribute keys.
	sensitiveFields = []string{"password", "secret", "token", "access_token", "client_secret"}

	sensitivePrefixes = []string{"secret_", "api_key"}

	// sensitiveValues catch credentials that reach a log line inside an
	// innocuous attribute: bearer tokens, JWTs (ten or more characters per
	// segment so version strings pass), and inline key=value credentials
	// such as the #access_token= fragment of an AniList implicit-grant
	// redirect.
	sensitiveValues = []*regexp.Regexp{
		regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
		regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
		regexp.MustCompile(`(?i)(api[_\-]?key|apikey|access_token|client_secret)\s*[:=]\s*[^\s&]+`),
	}
)

// redactor builds the masq ReplaceAttr used by every logger from New.
func redactor() func([]string, slog.Attr) slog.Attr {
	var opts []masq.Option
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range sensitiveValues {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
