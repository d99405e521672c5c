package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/media-gateway/internal/adapters/clients/anilist/graphql"
	"github.com/jsamuelsen11/media-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen11/media-gateway/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/media-gateway/mocks"
)

var testLimits = dto.PageLimits{Default: 25, Max: 50}

// bebop is a MediaDetails reply as AniList sends it.
func bebop() *graphql.Response {
	return &graphql.Response{Data: json.RawMessage(`{"Media":{"id":1,"title":{"romaji":"Cowboy Bebop"}}}`)}
}

func newMediaHandler(t *testing.T) (*handlers.MediaHandler, *mocks.MockMediaService) {
	t.Helper()
	svc := mocks.NewMockMediaService(t)
	return handlers.NewMediaHandler(svc, testLimits), svc
}

// withChiParams installs path parameters the way chi does after routing.
func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
