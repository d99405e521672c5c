package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/jsamuelsen11/media-gateway/internal/ports"
)

const defaultReadinessTimeout = 2 * time.Second

// HealthHandler serves the liveness and readiness probes. Readiness grades
// each registered dependency; only a dependency that is down takes the
// gateway out of rotation.
type HealthHandler struct {
	registry         ports.HealthRegistry
	readinessTimeout time.Duration
}

// HealthOption configures a HealthHandler.
type HealthOption func(*HealthHandler)

// WithReadinessTimeout bounds how long a readiness probe waits for its
// checks. Non-positive values keep the default of 2s.
func WithReadinessTimeout(d time.Duration) HealthOption {
	return func(h *HealthHandler) {
		if d > 0 {
			h.readinessTimeout = d
		}
	}
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry, opts ...HealthOption) *HealthHandler {
	h := &HealthHandler{registry: registry, readinessTimeout: defaultReadinessTimeout}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

type componentReport struct {
	Status ports.HealthStatus `json:"status"`
	Error  string             `json:"error,omitempty"`
}

type readinessReport struct {
	Status ports.HealthStatus         `json:"status"`
	Checks map[string]componentReport `json:"checks"`
}

// Readiness handles GET /health/ready. It answers 503 when any check is down
// and 200 when every check is up or degraded, all within the readiness
// timeout.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.readinessTimeout)
	defer cancel()

	report := h.registry.Check(ctx)

	body := readinessReport{
		Status: report.Status,
		Checks: make(map[string]componentReport, len(report.Components)),
	}
	for name, c := range report.Components {
		cr := componentReport{Status: c.Status}
		if c.Err != nil {
			cr.Error = c.Err.Error()
		}
		body.Checks[name] = cr
	}

	code := http.StatusOK
	if report.Status == ports.HealthDown {
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, code, body)
}
