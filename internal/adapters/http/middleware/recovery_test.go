package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/media-gateway/internal/adapters/http/middleware"
)

func TestRecovery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantBody   string
		wantLog    []string
	}{
		{
			name: "no panic passes through",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("ok"))
			},
			wantStatus: http.StatusOK,
			wantBody:   "ok",
		},
		{
			name:       "string panic becomes a problem",
			handler:    func(http.ResponseWriter, *http.Request) { panic("nil media") },
			wantStatus: http.StatusInternalServerError,
			wantLog:    []string{"panic recovered", `panic="nil media"`, "method=GET", "path=/api/v1/media/1", "response_started=false", "goroutine"},
		},
		{
			name:       "error panic",
			handler:    func(http.ResponseWriter, *http.Request) { panic(http.ErrNotSupported) },
			wantStatus: http.StatusInternalServerError,
			wantLog:    []string{"feature not supported"},
		},
		{
			name:       "non-error panic",
			handler:    func(http.ResponseWriter, *http.Request) { panic(42) },
			wantStatus: http.StatusInternalServerError,
			wantLog:    []string{"panic=42"},
		},
		{
			name: "started response is left alone",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusAccepted)
				_, _ = w.Write([]byte("partial"))
				panic("late panic")
			},
			wantStatus: http.StatusAccepted,
			wantBody:   "partial",
			wantLog:    []string{"response_started=true"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			rec := httptest.NewRecorder()
			middleware.Recovery(testLogger(&buf))(tt.handler).
				ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/media/1", http.NoBody))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
			if tt.wantStatus == http.StatusInternalServerError {
				assertInternalProblem(t, rec)
			}
			if len(tt.wantLog) == 0 && buf.Len() > 0 {
				t.Errorf("unexpected log output %q", buf.String())
			}
			for _, want := range tt.wantLog {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("log = %q, missing %q", buf.String(), want)
				}
			}
		})
	}
}

func assertInternalProblem(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()

	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
	var problem struct {
		Title  string `json:"title"`
		Status int    `json:"status"`
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&problem); err != nil {
		t.Fatalf("decoding problem: %v", err)
	}
	if problem.Title != "Internal Server Error" || problem.Status != http.StatusInternalServerError {
		t.Errorf("problem = %+v, want a 500 Internal Server Error", problem)
	}
	if strings.Contains(problem.Detail, "panic") {
		t.Errorf("detail %q leaks the panic", problem.Detail)
	}
}

func TestRecovery_LogsRequestIDFromContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.RequestID()(middleware.Recovery(testLogger(&buf))(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("nil media") }),
	))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/media/1", http.NoBody)
	req.Header.Set("X-Request-ID", "req-recover")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if n := strings.Count(buf.String(), "request_id=req-recover"); n != 1 {
		t.Errorf("request_id appears %d times in %q, want 1", n, buf.String())
	}
}

func TestRecovery_ReraisesAbortHandler(t *testing.T) {
	t.Parallel()

	handler := middleware.Recovery(discardLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		if v := recover(); v != http.ErrAbortHandler { //nolint:errorlint // sentinel panic value
			t.Errorf("recovered %v, want http.ErrAbortHandler", v)
		}
	}()

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", http.NoBody))
	t.Error("ServeHTTP returned, want re-panic")
}
