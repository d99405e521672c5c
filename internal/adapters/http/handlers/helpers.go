package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/media-gateway/internal/adapters/clients/anilist/graphql"
	"github.com/jsamuelsen11/media-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen11/media-gateway/internal/platform/logging"
)

// parseID reads a positive integer path parameter.
func parseID(r *http.Request, param string) (int, error) {
	return dto.ParseID(chi.URLParam(r, param), param)
}

// writeJSON encodes v as the response body. Encoding failures happen after
// the status line is sent, so they are only logged.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding response",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
}

// writeMedia writes a service reply or, on failure, the matching problem
// response.
func writeMedia(w http.ResponseWriter, r *http.Request, resp *graphql.Response, err error) {
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToMediaResponse(resp))
}
