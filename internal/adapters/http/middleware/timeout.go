package middleware

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/media-gateway/internal/adapters/http/dto"
)

// Timeout bounds each request to limit. The handler sees the deadline on
// its context, so AniList calls and overview fan-outs stop with it, and
// writes into a buffer. If it returns in time the buffer is sent as is;
// otherwise the buffer is discarded and a 504 problem is sent instead.
// Nothing is written when the caller disconnects first.
//
// A handler panic is re-raised on the request goroutine, where Recovery
// catches it.
func Timeout(limit time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), limit)
			defer cancel()

			dw := &deferredWriter{header: make(http.Header)}
			// Receives the panic value, or nil once the handler returns.
			finished := make(chan any, 1)
			go func() {
				defer func() { finished <- recover() }()
				next.ServeHTTP(dw, r.WithContext(ctx))
			}()

			select {
			case v := <-finished:
				if v != nil {
					panic(v)
				}
				dw.commit(w)
			case <-ctx.Done():
				dw.expire()
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					dto.WriteErrorResponse(w, r, fmt.Errorf("request exceeded %s: %w", limit, ctx.Err()))
				}
			}
		})
	}
}

// deferredWriter holds a response until Timeout decides its fate. Once
// expired, further writes fail with http.ErrHandlerTimeout.
type deferredWriter struct {
	header http.Header

	mu      sync.Mutex
	status  int
	body    bytes.Buffer
	expired bool
}

func (dw *deferredWriter) Header() http.Header { return dw.header }

func (dw *deferredWriter) WriteHeader(code int) {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	if dw.status == 0 {
		dw.status = code
	}
}

func (dw *deferredWriter) Write(b []byte) (int, error) {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	if dw.expired {
		return 0, http.ErrHandlerTimeout
	}
	if dw.status == 0 {
		dw.status = http.StatusOK
	}
	return dw.body.Write(b)
}

func (dw *deferredWriter) expire() {
	dw.mu.Lock()
	dw.expired = true
	dw.mu.Unlock()
}

// commit sends the held response to w. Only called after the handler
// returned.
func (dw *deferredWriter) commit(w http.ResponseWriter) {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	maps.Copy(w.Header(), dw.header)
	if dw.status != 0 {
		w.WriteHeader(dw.status)
	}
	if dw.body.Len() > 0 {
		_, _ = w.Write(dw.body.Bytes())
	}
}
