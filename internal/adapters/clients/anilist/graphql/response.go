package graphql

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jsamuelsen11/media-gateway/internal/domain"
)

// Response is an AniList GraphQL reply. Data is kept as raw JSON and handed to
// the caller untouched; Errors holds any GraphQL-level errors AniList reported
// alongside (or instead of) data.
type Response struct {
	Data   json.RawMessage `json:"data"`
	Errors []Error         `json:"errors,omitempty"`
}

// HasErrors reports whether AniList returned GraphQL errors.
func (r *Response) HasErrors() bool {
	return len(r.Errors) > 0
}

// Error is a single entry of the GraphQL "errors" array. AniList adds an HTTP
// status to each entry.
type Error struct {
	Message   string     `json:"message"`
	Status    int        `json:"status,omitempty"`
	Locations []Location `json:"locations,omitempty"`
}

// Location points into the query document.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// ServerError is returned by Execute when AniList replies with a non-2xx
// status. It unwraps to the domain sentinel matching the status so callers
// can branch with errors.Is.
type ServerError struct {
	Operation string
	Status    int
	Errors    []Error
	// RetryIn is AniList's Retry-After hint, zero when none was sent.
	RetryIn time.Duration
}

// RetryAfter implements domain.RetryHint.
func (e *ServerError) RetryAfter() time.Duration {
	return e.RetryIn
}

func (e *ServerError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, ge := range e.Errors {
		if ge.Message != "" {
			msgs = append(msgs, ge.Message)
		}
	}
	detail := http.StatusText(e.Status)
	if len(msgs) > 0 {
		detail = strings.Join(msgs, "; ")
	}
	return fmt.Sprintf("anilist %s: HTTP %d: %s", e.Operation, e.Status, detail)
}

// Unwrap maps the HTTP status to a domain error. Statuses without a domain
// meaning unwrap to nil.
func (e *ServerError) Unwrap() error {
	switch {
	case e.Status == http.StatusNotFound:
		return domain.ErrNotFound
	case e.Status == http.StatusBadRequest || e.Status == http.StatusUnprocessableEntity:
		return domain.ErrValidation
	case e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden:
		return domain.ErrForbidden
	case e.Status == http.StatusConflict:
		return domain.ErrConflict
	case e.Status == http.StatusTooManyRequests:
		return domain.ErrRateLimited
	case e.Status >= http.StatusInternalServerError:
		return domain.ErrUnavailable
	default:
		return nil
	}
}
