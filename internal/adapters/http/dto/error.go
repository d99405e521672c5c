package dto

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/media-gateway/internal/adapters/clients/anilist/graphql"
	"github.com/jsamuelsen11/media-gateway/internal/domain"
	"github.com/jsamuelsen11/media-gateway/internal/platform/logging"
)

const (
	// StatusClientClosedRequest is the non-standard 499 for a caller that
	// went away before the reply was ready.
	StatusClientClosedRequest = 499

	problemContentType = "application/problem+json"
)

// ErrorResponse is an RFC 9457 problem document.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`

	// Upstream is set when AniList itself rejected the request.
	Upstream *UpstreamStatus `json:"upstream,omitempty"`
}

// UpstreamStatus carries the status and GraphQL errors AniList replied with.
type UpstreamStatus struct {
	Status int            `json:"status"`
	Errors []GraphQLError `json:"errors,omitempty"`
}

// ErrorDetail is one rejected input. Location names where it came from, e.g.
// "query.per_page" or "path.id".
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// statusRules is checked in order; the first target err matches decides
// the status. Cancellation comes first so a canceled upstream call is not
// reported as an AniList failure.
var statusRules = []struct {
	target error
	status int
}{
	{context.Canceled, StatusClientClosedRequest},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrRateLimited, http.StatusTooManyRequests},
	{domain.ErrUnavailable, http.StatusBadGateway},
}

// StatusOf maps err to the HTTP status a client sees, 500 when nothing
// matches.
func StatusOf(err error) int {
	for _, rule := range statusRules {
		if errors.Is(err, rule.target) {
			return rule.status
		}
	}
	return http.StatusInternalServerError
}

// NewErrorResponse builds the problem document for err. Validation errors
// list their fields; AniList rejections carry the upstream status.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := StatusOf(err)
	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    title(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}
	var serr *graphql.ServerError
	if errors.As(err, &serr) {
		resp.Upstream = &UpstreamStatus{Status: serr.Status, Errors: toGraphQLErrors(serr.Errors)}
	}
	return resp
}

// WriteErrorResponse sends the problem document for err. An error carrying a
// domain.RetryHint also sets Retry-After in whole seconds, rounded up.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	var hint domain.RetryHint
	if errors.As(err, &hint) {
		if secs := math.Ceil(hint.RetryAfter().Seconds()); secs > 0 {
			w.Header().Set("Retry-After", strconv.FormatInt(int64(secs), 10))
		}
	}
	w.Header().Set("Content-Type", problemContentType)
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding problem response",
			slog.Int("status", resp.Status),
			slog.Any("error", encErr),
		)
	}
}

// fieldDetails sorts validation fields by location. Fields without a
// location prefix come from the query builders and are reported under
// "params.".
func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		if !strings.Contains(field, ".") {
			field = "params." + field
		}
		details = append(details, ErrorDetail{Location: field, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return cmp.Compare(a.Location, b.Location)
	})
	return details
}

func title(status int) string {
	if status == StatusClientClosedRequest {
		return "Client Closed Request"
	}
	return http.StatusText(status)
}
