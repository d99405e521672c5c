package domain

import (
	"errors"
	"maps"
	"slices"
	"strings"
	"time"
)

// Sentinels shared by every layer. Adapters wrap them so handlers can map
// failures to statuses with errors.Is.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
	ErrRateLimited = errors.New("rate limited")
	// ErrDegraded marks a dependency that still answers but not reliably.
	ErrDegraded = errors.New("degraded")
)

// RetryHint is implemented by errors that know when the caller may try
// again.
type RetryHint interface {
	RetryAfter() time.Duration
}

// Common field-level validation messages.
const (
	MsgRequired    = "is required"
	MsgMustBePos   = "must be a positive integer"
	MsgInvalidEnum = "invalid value"
)

// ValidationError lists rejected inputs by field. It matches ErrValidation
// under errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// Error lists the fields in name order so messages are stable.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	for i, field := range slices.Sorted(maps.Keys(e.Fields)) {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(field + ": " + e.Fields[field])
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
