// Package query builds GraphQL requests for the AniList media API from
// loosely constrained caller parameters.
//
// Every builder is a pure function: it normalizes its inputs into a Request
// whose variables are either Present (sent) or Absent (omitted from the
// wire). The normalization rules are uniform across operations:
//
//   - free-text filters are sent trimmed, and only when non-blank
//   - list filters are sent only when non-empty, order preserved
//   - nullable scalars (booleans, enums, ids) are sent only when non-nil
//   - years become fuzzy date bounds (year*10000), see [DateBound]
//   - pagination and explicit sort orderings are always sent
//   - identifier lookups reject non-positive ids before building anything
//
// Builders hold no state and may be called concurrently.
package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/jsamuelsen11/media-gateway/internal/domain"
	"github.com/jsamuelsen11/media-gateway/internal/domain/media"
	"github.com/jsamuelsen11/media-gateway/internal/platform/optional"
)

// Contract violations detected before a request is built. All wrap
// domain.ErrValidation.
var (
	ErrInvalidID   = fmt.Errorf("%w: identifier must be positive", domain.ErrValidation)
	ErrInvalidPage = fmt.Errorf("%w: page and per_page must be positive", domain.ErrValidation)
	ErrOutOfRange  = fmt.Errorf("%w: value does not fit a GraphQL Int", domain.ErrValidation)
	ErrInvalidType = fmt.Errorf("%w: type must be ANIME or MANGA", domain.ErrValidation)
)

// ErrUnknownOperation is returned by [Build] for an operation name that is
// not registered.
var ErrUnknownOperation = errors.New("query: unknown operation")

// dateBoundScale shifts a year into the YYYYMMDD fuzzy date layout where an
// unknown month and day are encoded as zeros, e.g. 2016 -> 20160000.
const dateBoundScale = 10000

// Request is a fully specified GraphQL request: the operation name, its
// document, and one Optional per declared variable.
type Request struct {
	Operation Operation
	Document  string
	fields    map[string]optional.Field
}

func newRequest(op Operation) *Request {
	return &Request{
		Operation: op,
		Document:  document(op),
		fields:    make(map[string]optional.Field),
	}
}

// set declares a variable on the request. Called only by builders.
func (r *Request) set(name string, f optional.Field) *Request {
	r.fields[name] = f
	return r
}

// Field returns the declared variable with the given name. Variables the
// operation does not declare are reported as absent.
func (r *Request) Field(name string) optional.Field {
	if f, ok := r.fields[name]; ok {
		return f
	}
	return optional.Absent[any]()
}

// FieldNames returns every declared variable name, sorted.
func (r *Request) FieldNames() []string {
	names := make([]string, 0, len(r.fields))
	for name := range r.fields {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// PresentFields returns the names of the variables that will be sent, sorted.
func (r *Request) PresentFields() []string {
	names := make([]string, 0, len(r.fields))
	for name, f := range r.fields {
		if f.IsPresent() {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Variables returns the wire variables: present fields only. Absent fields
// are omitted, never sent as null.
func (r *Request) Variables() map[string]any {
	vars := make(map[string]any, len(r.fields))
	for name, f := range r.fields {
		if f.IsPresent() {
			vars[name] = f.Value()
		}
	}
	return vars
}

// wireRequest is the GraphQL-over-HTTP POST body.
type wireRequest struct {
	OperationName string         `json:"operationName"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables"`
}

// MarshalJSON encodes the request as a GraphQL-over-HTTP POST body.
func (r *Request) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireRequest{
		OperationName: string(r.Operation),
		Query:         r.Document,
		Variables:     r.Variables(),
	})
}

// PageRequest selects one page of a paginated listing. Both values must be
// positive. Pagination is always sent.
type PageRequest struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

func (p PageRequest) validate() error {
	if p.Page < 1 || p.PerPage < 1 {
		return fmt.Errorf("page=%d per_page=%d: %w", p.Page, p.PerPage, ErrInvalidPage)
	}
	return nil
}

// apply declares the always-present page and perPage variables.
func (p PageRequest) apply(r *Request) *Request {
	return r.
		set("page", optional.Present(p.Page)).
		set("perPage", optional.Present(p.PerPage))
}

// DateBound encodes a nullable year as a fuzzy date integer, year*10000.
// A nil year yields Absent. Bounds are encoded independently; no ordering
// between a lower and an upper bound is enforced here.
func DateBound(year *int) optional.Optional[int] {
	return optional.Map(optional.PresentIfNotNil(year), func(y int) int {
		return y * dateBoundScale
	})
}

// requireID fails fast when a required identifier is missing (zero) or
// negative.
func requireID(op Operation, name string, id int) error {
	if id <= 0 {
		return fmt.Errorf("%s: %s=%d: %w", op, name, id, ErrInvalidID)
	}
	return nil
}

// requireInt32 rejects a bound that AniList's signed 32-bit Int cannot hold.
// Nil passes.
func requireInt32(op Operation, name string, v *int64) error {
	if v != nil && (*v < math.MinInt32 || *v > math.MaxInt32) {
		return fmt.Errorf("%s: %s=%d: %w", op, name, *v, ErrOutOfRange)
	}
	return nil
}

// requireType rejects a media type outside the AniList enum, including the
// zero value.
func requireType(op Operation, t media.Type) error {
	if !t.IsValid() {
		return fmt.Errorf("%s: type=%q: %w", op, t, ErrInvalidType)
	}
	return nil
}

// requireDateBound rejects a year whose fuzzy date encoding overflows
// AniList's 32-bit Int.
func requireDateBound(op Operation, name string, year *int) error {
	if year == nil {
		return nil
	}
	v := int64(*year) * dateBoundScale
	return requireInt32(op, name, &v)
}

// alwaysList makes a required list variable serialize as [] rather than null
// when the caller hands in a nil slice.
func alwaysList[S ~[]E, E any](s S) optional.Optional[S] {
	if s == nil {
		s = S{}
	}
	return optional.Present(s)
}
