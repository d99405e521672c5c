// Package health keeps the downstream checkers (today the AniList transport)
// consulted by the readiness endpoint and grades their answers.
package health

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/jsamuelsen11/media-gateway/internal/domain"
	"github.com/jsamuelsen11/media-gateway/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is safe for concurrent registration and probing.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

func New() *Registry {
	return &Registry{}
}

// Register adds checker. A later checker with the same name replaces the
// earlier one in reports.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// Check runs every checker concurrently, outside the lock, and grades each
// result.
func (r *Registry) Check(ctx context.Context) ports.HealthReport {
	r.mu.RLock()
	checkers := slices.Clone(r.checkers)
	r.mu.RUnlock()

	results := make([]ports.ComponentHealth, len(checkers))
	var wg sync.WaitGroup
	for i, c := range checkers {
		wg.Go(func() {
			results[i] = grade(c.HealthCheck(ctx))
		})
	}
	wg.Wait()

	report := ports.HealthReport{
		Status:     ports.HealthUp,
		Components: make(map[string]ports.ComponentHealth, len(checkers)),
	}
	for i, c := range checkers {
		report.Components[c.Name()] = results[i]
	}
	for _, h := range report.Components {
		report.Status = report.Status.Worse(h.Status)
	}
	return report
}

// Len reports how many checkers are registered.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.checkers)
}

func grade(err error) ports.ComponentHealth {
	switch {
	case err == nil:
		return ports.ComponentHealth{Status: ports.HealthUp}
	case errors.Is(err, domain.ErrDegraded):
		return ports.ComponentHealth{Status: ports.HealthDegraded, Err: err}
	default:
		return ports.ComponentHealth{Status: ports.HealthDown, Err: err}
	}
}
