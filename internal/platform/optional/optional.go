// Package optional provides a two-state value, Present or Absent, for request
// fields that are either transmitted with a value or omitted entirely.
//
// Absent is not the same as an explicit null: an absent field never reaches
// the wire, while a present field is always sent, even when its value is the
// zero value of T.
//
//	page := optional.Present(1)
//	search := optional.NonBlank(query)      // Absent for "" or "   "
//	genres := optional.NonEmpty(genreIn)    // Absent for nil or []string{}
//	onList := optional.PresentIfNotNil(onList)
package optional

import (
	"fmt"
	"strings"
)

// Optional holds a value of type T that is either present or absent.
// The zero value is Absent.
type Optional[T any] struct {
	value   T
	present bool
}

// Field is the type-erased view of an Optional. It lets a request keep
// optionals of different element types in a single map.
type Field interface {
	IsPresent() bool
	Value() any
}

// Present returns an Optional holding v.
func Present[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// Absent returns an empty Optional.
func Absent[T any]() Optional[T] {
	return Optional[T]{}
}

// PresentIfNotNil returns Present(*p) for a non-nil pointer, Absent otherwise.
func PresentIfNotNil[T any](p *T) Optional[T] {
	if p == nil {
		return Absent[T]()
	}
	return Present(*p)
}

// NonBlank returns the trimmed string when it is non-empty, Absent otherwise.
func NonBlank(s string) Optional[string] {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Absent[string]()
	}
	return Present(trimmed)
}

// NonEmpty returns Present(s) when s has at least one element, Absent for nil
// and empty slices. The slice is passed through without copying or reordering.
func NonEmpty[S ~[]E, E any](s S) Optional[S] {
	if len(s) == 0 {
		return Absent[S]()
	}
	return Present(s)
}

// Map applies fn to the held value. Absent stays Absent and fn is not called.
func Map[T, U any](o Optional[T], fn func(T) U) Optional[U] {
	if !o.present {
		return Absent[U]()
	}
	return Present(fn(o.value))
}

// IsPresent reports whether a value is held.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// Get returns the held value and true, or the zero value and false.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// MustGet returns the held value. It panics on Absent.
func (o Optional[T]) MustGet() T {
	if !o.present {
		panic("optional: MustGet called on absent value")
	}
	return o.value
}

// OrElse returns the held value, or def when absent.
func (o Optional[T]) OrElse(def T) T {
	if !o.present {
		return def
	}
	return o.value
}

// Value implements Field. It returns nil for Absent.
func (o Optional[T]) Value() any {
	if !o.present {
		return nil
	}
	return o.value
}

// String renders the optional for logs and test failures.
func (o Optional[T]) String() string {
	if !o.present {
		return "Absent"
	}
	return fmt.Sprintf("Present(%v)", o.value)
}
