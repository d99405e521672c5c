// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/media-gateway/internal/adapters/clients/anilist/query"
	"github.com/jsamuelsen11/media-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen11/media-gateway/internal/ports"
)

// MediaHandler exposes the media service over HTTP. Every input is parsed
// and validated here; malformed requests never reach the service.
type MediaHandler struct {
	svc    ports.MediaService
	limits dto.PageLimits
}

// NewMediaHandler creates a MediaHandler. Zero limits fall back to
// dto.DefaultPageLimits.
func NewMediaHandler(svc ports.MediaService, limits dto.PageLimits) *MediaHandler {
	if limits.Default < 1 || limits.Max < 1 {
		limits = dto.DefaultPageLimits
	}
	return &MediaHandler{svc: svc, limits: limits}
}

// SearchMedia handles GET /api/v1/media/search.
func (h *MediaHandler) SearchMedia(w http.ResponseWriter, r *http.Request) {
	params, err := dto.ParseSearchMedia(r.URL.Query(), h.limits)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	resp, err := h.svc.SearchMedia(r.Context(), params)
	writeMedia(w, r, resp, err)
}

// GenreTagCollection handles GET /api/v1/media/genres-tags.
func (h *MediaHandler) GenreTagCollection(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.GenreTagCollection(r.Context())
	writeMedia(w, r, resp, err)
}

// MediaSorted handles GET /api/v1/media/sorted.
func (h *MediaHandler) MediaSorted(w http.ResponseWriter, r *http.Request) {
	params, err := dto.ParseMediaSorted(r.URL.Query(), h.limits)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	resp, err := h.svc.MediaSorted(r.Context(), params)
	writeMedia(w, r, resp, err)
}

// MediaChart handles GET /api/v1/media/chart.
func (h *MediaHandler) MediaChart(w http.ResponseWriter, r *http.Request) {
	params, err := dto.ParseMediaChart(r.URL.Query(), h.limits)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	resp, err := h.svc.MediaChart(r.Context(), params)
	writeMedia(w, r, resp, err)
}

// MediaDetails handles GET /api/v1/media/{id}.
func (h *MediaHandler) MediaDetails(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	resp, err := h.svc.MediaDetails(r.Context(), id)
	writeMedia(w, r, resp, err)
}

// MediaCharactersAndStaff handles GET /api/v1/media/{id}/characters-staff.
func (h *MediaHandler) MediaCharactersAndStaff(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	resp, err := h.svc.MediaCharactersAndStaff(r.Context(), id)
	writeMedia(w, r, resp, err)
}

// MediaRelationsAndRecommendations handles GET /api/v1/media/{id}/relations.
func (h *MediaHandler) MediaRelationsAndRecommendations(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	resp, err := h.svc.MediaRelationsAndRecommendations(r.Context(), id)
	writeMedia(w, r, resp, err)
}

// MediaStats handles GET /api/v1/media/{id}/stats.
func (h *MediaHandler) MediaStats(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	resp, err := h.svc.MediaStats(r.Context(), id)
	writeMedia(w, r, resp, err)
}

// MediaReviews handles GET /api/v1/media/{id}/reviews.
func (h *MediaHandler) MediaReviews(w http.ResponseWriter, r *http.Request) {
	id, page, ok := h.idAndPage(w, r)
	if !ok {
		return
	}

	resp, err := h.svc.MediaReviews(r.Context(), id, page)
	writeMedia(w, r, resp, err)
}

// MediaThreads handles GET /api/v1/media/{id}/threads.
func (h *MediaHandler) MediaThreads(w http.ResponseWriter, r *http.Request) {
	id, page, ok := h.idAndPage(w, r)
	if !ok {
		return
	}

	resp, err := h.svc.MediaThreads(r.Context(), id, page)
	writeMedia(w, r, resp, err)
}

// MediaOverview handles GET /api/v1/media/{id}/overview. Sections that fail
// are listed in the body; the reply is 200 as long as one section loaded.
func (h *MediaHandler) MediaOverview(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	overview, err := h.svc.MediaOverview(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToOverviewResponse(overview))
}

// AiringAnimes handles GET /api/v1/airing.
func (h *MediaHandler) AiringAnimes(w http.ResponseWriter, r *http.Request) {
	params, err := dto.ParseAiringAnimes(r.URL.Query(), h.limits)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	resp, err := h.svc.AiringAnimes(r.Context(), params)
	writeMedia(w, r, resp, err)
}

// AiringOnMyList handles GET /api/v1/airing/on-my-list. The viewer is
// resolved by AniList from the forwarded bearer token.
func (h *MediaHandler) AiringOnMyList(w http.ResponseWriter, r *http.Request) {
	page, err := dto.ParsePage(r.URL.Query(), h.limits)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	resp, err := h.svc.AiringOnMyList(r.Context(), page)
	writeMedia(w, r, resp, err)
}

// SeasonalAnime handles GET /api/v1/seasons/{year}/{season}.
func (h *MediaHandler) SeasonalAnime(w http.ResponseWriter, r *http.Request) {
	season, err := dto.ParseSeason(chi.URLParam(r, "year"), chi.URLParam(r, "season"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	page, err := dto.ParsePage(r.URL.Query(), h.limits)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	resp, err := h.svc.SeasonalAnime(r.Context(), season, page)
	writeMedia(w, r, resp, err)
}

// CurrentSeason handles GET /api/v1/seasons/current.
func (h *MediaHandler) CurrentSeason(w http.ResponseWriter, r *http.Request) {
	page, err := dto.ParsePage(r.URL.Query(), h.limits)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	resp, err := h.svc.CurrentSeason(r.Context(), page)
	writeMedia(w, r, resp, err)
}

// UserCurrentAnimeList handles GET /api/v1/users/{id}/current-anime.
func (h *MediaHandler) UserCurrentAnimeList(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	resp, err := h.svc.UserCurrentAnimeList(r.Context(), id)
	writeMedia(w, r, resp, err)
}

// idAndPage parses the {id} path parameter and the pagination query. On
// failure it writes the error response and returns false.
func (h *MediaHandler) idAndPage(w http.ResponseWriter, r *http.Request) (int, query.PageRequest, bool) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return 0, query.PageRequest{}, false
	}
	page, err := dto.ParsePage(r.URL.Query(), h.limits)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return 0, query.PageRequest{}, false
	}
	return id, page, true
}
