package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/media-gateway/internal/adapters/http/dto"
)

// errInternalServer is all a client learns about a recovered panic.
var errInternalServer = errors.New("internal server error")

// Recovery turns a handler panic into a logged stack trace and, when nothing
// has been written yet, a 500 problem response. Placed after RequestID, the
// log line carries the request id from the context. http.ErrAbortHandler
// is re-raised so net/http aborts the connection.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cw := capture(w)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler { //nolint:errorlint // sentinel panic value
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Bool("response_started", cw.started),
					slog.String("stack", string(debug.Stack())),
				)
				if !cw.started {
					dto.WriteErrorResponse(cw, r, errInternalServer)
				}
			}()

			next.ServeHTTP(cw, r)
		})
	}
}
