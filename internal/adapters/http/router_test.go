package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/media-gateway/internal/adapters/clients/anilist/graphql"
	"github.com/jsamuelsen11/media-gateway/internal/adapters/clients/anilist/query"
	adapthttp "github.com/jsamuelsen11/media-gateway/internal/adapters/http"
	"github.com/jsamuelsen11/media-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen11/media-gateway/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/media-gateway/internal/domain/media"
	"github.com/jsamuelsen11/media-gateway/internal/ports"
	"github.com/jsamuelsen11/media-gateway/mocks"
)

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockMediaService) {
	t.Helper()
	svc := mocks.NewMockMediaService(t)
	registry := mocks.NewMockHealthRegistry(t)

	mh := handlers.NewMediaHandler(svc, dto.DefaultPageLimits)
	hh := handlers.NewHealthHandler(registry)

	router := adapthttp.NewRouter(mh, hh)
	return router, svc
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	expectedRoutes := []string{
		"/health/live",
		"/health/ready",
		"/api/v1/media/search",
		"/api/v1/media/sorted",
		"/api/v1/media/chart",
		"/api/v1/media/genres-tags",
		"/api/v1/media/{id}/",
		"/api/v1/media/{id}/characters-staff",
		"/api/v1/media/{id}/relations",
		"/api/v1/media/{id}/stats",
		"/api/v1/media/{id}/reviews",
		"/api/v1/media/{id}/threads",
		"/api/v1/media/{id}/overview",
		"/api/v1/airing",
		"/api/v1/airing/on-my-list",
		"/api/v1/seasons/current",
		"/api/v1/seasons/{year}/{season}",
		"/api/v1/users/{id}/current-anime",
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, path := range expectedRoutes {
		key := http.MethodGet + " " + path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockMediaService(t)
	registry := mocks.NewMockHealthRegistry(t)

	mh := handlers.NewMediaHandler(svc, dto.DefaultPageLimits)
	hh := handlers.NewHealthHandler(registry)

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router := adapthttp.NewRouter(mh, hh, testMW)

	registry.EXPECT().Check(mock.Anything).Return(ports.HealthReport{Status: ports.HealthUp})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_IntegrationMediaDetails(t *testing.T) {
	t.Parallel()

	router, svc := newTestRouter(t)

	svc.EXPECT().MediaDetails(mock.Anything, 1).
		Return(&graphql.Response{Data: json.RawMessage(`{"Media":{"id":1}}`)}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/media/1", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestRouter_StaticPathsWinOverID(t *testing.T) {
	t.Parallel()

	router, svc := newTestRouter(t)

	svc.EXPECT().GenreTagCollection(mock.Anything).
		Return(&graphql.Response{Data: json.RawMessage(`{"genres":[]}`)}, nil)
	svc.EXPECT().CurrentSeason(mock.Anything, query.PageRequest{Page: 1, PerPage: 25}).
		Return(&graphql.Response{Data: json.RawMessage(`{"Page":{}}`)}, nil)

	for _, path := range []string{"/api/v1/media/genres-tags", "/api/v1/seasons/current"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want %d", path, rec.Code, http.StatusOK)
		}
	}
}

func TestRouter_IntegrationSeason(t *testing.T) {
	t.Parallel()

	router, svc := newTestRouter(t)

	svc.EXPECT().SeasonalAnime(mock.Anything,
		media.AnimeSeason{Year: 2024, Season: media.SeasonSpring},
		query.PageRequest{Page: 1, PerPage: 25},
	).Return(&graphql.Response{Data: json.RawMessage(`{"Page":{}}`)}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/seasons/2024/Spring", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_NonPositiveIDNeverReachesService(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	for _, path := range []string{"/api/v1/media/0", "/api/v1/media/-4/stats", "/api/v1/users/0/current-anime"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want %d", path, rec.Code, http.StatusBadRequest)
		}
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/media/search", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
