// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/media-gateway/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	mediaHandler *handlers.MediaHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Catalogue listings.
		r.Get("/media/search", mediaHandler.SearchMedia)
		r.Get("/media/sorted", mediaHandler.MediaSorted)
		r.Get("/media/chart", mediaHandler.MediaChart)
		r.Get("/media/genres-tags", mediaHandler.GenreTagCollection)

		// Single entry lookups.
		r.Route("/media/{id}", func(r chi.Router) {
			r.Get("/", mediaHandler.MediaDetails)
			r.Get("/characters-staff", mediaHandler.MediaCharactersAndStaff)
			r.Get("/relations", mediaHandler.MediaRelationsAndRecommendations)
			r.Get("/stats", mediaHandler.MediaStats)
			r.Get("/reviews", mediaHandler.MediaReviews)
			r.Get("/threads", mediaHandler.MediaThreads)
			r.Get("/overview", mediaHandler.MediaOverview)
		})

		// Schedules.
		r.Get("/airing", mediaHandler.AiringAnimes)
		r.Get("/airing/on-my-list", mediaHandler.AiringOnMyList)
		r.Get("/seasons/current", mediaHandler.CurrentSeason)
		r.Get("/seasons/{year}/{season}", mediaHandler.SeasonalAnime)

		// Users.
		r.Get("/users/{id}/current-anime", mediaHandler.UserCurrentAnimeList)
	})

	return r
}
