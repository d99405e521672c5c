package ports

import "context"

// HealthStatus grades a component or the whole service.
type HealthStatus string

const (
	HealthUp       HealthStatus = "up"
	HealthDegraded HealthStatus = "degraded"
	HealthDown     HealthStatus = "down"
)

// rank orders statuses from up to down.
func (s HealthStatus) rank() int {
	switch s {
	case HealthDown:
		return 2
	case HealthDegraded:
		return 1
	default:
		return 0
	}
}

// Worse returns whichever of s and other is the more severe.
func (s HealthStatus) Worse(other HealthStatus) HealthStatus {
	if other.rank() > s.rank() {
		return other
	}
	return s
}

// HealthChecker is implemented by components the readiness probe consults,
// such as the AniList transport.
type HealthChecker interface {
	// Name identifies the component in reports (e.g., "anilist").
	Name() string

	// HealthCheck returns nil when healthy. An error wrapping
	// domain.ErrDegraded marks the component degraded; any other error
	// marks it down.
	HealthCheck(ctx context.Context) error
}

// ComponentHealth is the graded result of one checker.
type ComponentHealth struct {
	Status HealthStatus
	Err    error
}

// HealthReport is the outcome of one readiness probe. Status is the worst
// component status, or up when nothing is registered.
type HealthReport struct {
	Status     HealthStatus
	Components map[string]ComponentHealth
}

// HealthRegistry runs the registered checkers for the readiness endpoint.
type HealthRegistry interface {
	Register(checker HealthChecker)
	Check(ctx context.Context) HealthReport
}
