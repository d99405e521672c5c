package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// Budget headers AniList sends with every reply.
const (
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRateLimitReset     = "X-RateLimit-Reset"
	HeaderRetryAfter         = "Retry-After"
)

// maxQuotaPause bounds how long a reported reset can hold callers. AniList
// budgets are per minute.
const maxQuotaPause = time.Minute

// ErrThrottled is matched by every *ThrottledError.
var ErrThrottled = errors.New("upstream request budget exhausted")

// ThrottledError is returned without calling upstream when the reported
// budget is exhausted and the caller's deadline ends before it resets.
type ThrottledError struct {
	Service string
	Until   time.Time
}

func (e *ThrottledError) Error() string {
	return fmt.Sprintf("%s: %s until %s", e.Service, ErrThrottled, e.Until.UTC().Format(time.RFC3339))
}

func (e *ThrottledError) Is(target error) bool {
	return target == ErrThrottled
}

// RetryAfter returns the time left until the budget resets.
func (e *ThrottledError) RetryAfter() time.Duration {
	return max(time.Until(e.Until), 0)
}

// Quota is the request budget AniList last reported.
type Quota struct {
	Limit     int
	Remaining int
	// ResetAt is zero when the reply carried no reset time.
	ResetAt time.Time
	// PausedUntil is set while callers are held back.
	PausedUntil time.Time
}

// quotaTracker shares the upstream budget between all requests of a client,
// so one 429 holds back every caller instead of only the one that saw it.
type quotaTracker struct {
	mu    sync.Mutex
	quota Quota
}

// observe records the budget headers of a reply.
func (q *quotaTracker) observe(h http.Header, now time.Time) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if n, err := strconv.Atoi(h.Get(HeaderRateLimitLimit)); err == nil {
		q.quota.Limit = n
	}
	remaining, remErr := strconv.Atoi(h.Get(HeaderRateLimitRemaining))
	if remErr == nil {
		q.quota.Remaining = remaining
	}
	if secs, err := strconv.ParseInt(h.Get(HeaderRateLimitReset), 10, 64); err == nil {
		q.quota.ResetAt = time.Unix(secs, 0)
	}

	var until time.Time
	if remErr == nil && remaining <= 0 && q.quota.ResetAt.After(now) {
		until = q.quota.ResetAt
	}
	if d := parseRetryAfter(h.Get(HeaderRetryAfter), now); d > 0 {
		until = now.Add(d)
	}
	if until.IsZero() {
		return
	}
	until = minTime(until, now.Add(maxQuotaPause))
	if until.After(q.quota.PausedUntil) {
		q.quota.PausedUntil = until
	}
}

func (q *quotaTracker) snapshot() Quota {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.quota
}

// wait holds the caller until a pause ends. When ctx expires first it
// returns a *ThrottledError at once rather than sleeping to no purpose.
func (q *quotaTracker) wait(ctx context.Context, service string) error {
	until := q.snapshot().PausedUntil
	d := time.Until(until)
	if d <= 0 {
		return nil
	}
	if deadline, ok := ctx.Deadline(); ok && deadline.Before(until) {
		return &ThrottledError{Service: service, Until: until}
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
