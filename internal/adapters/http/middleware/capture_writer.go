package middleware

import "net/http"

// captureWriter records the status and body size of a response for the
// middleware that report them. Recovery, OpenTelemetry, and Logging share
// one instance per request.
type captureWriter struct {
	http.ResponseWriter
	status  int
	started bool
	bytes   int64
}

// capture wraps w unless an outer middleware already did.
func capture(w http.ResponseWriter) *captureWriter {
	if cw, ok := w.(*captureWriter); ok {
		return cw
	}
	return &captureWriter{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader keeps the first status; later calls are dropped as net/http
// would drop them.
func (cw *captureWriter) WriteHeader(code int) {
	if cw.started {
		return
	}
	cw.status, cw.started = code, true
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	cw.started = true
	n, err := cw.ResponseWriter.Write(b)
	cw.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach Flush and Hijack.
func (cw *captureWriter) Unwrap() http.ResponseWriter {
	return cw.ResponseWriter
}
