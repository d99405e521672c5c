package dto_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jsamuelsen11/media-gateway/internal/adapters/clients/anilist/graphql"
	"github.com/jsamuelsen11/media-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen11/media-gateway/internal/domain"
	"github.com/jsamuelsen11/media-gateway/internal/ports"
)

func TestToMediaResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       *graphql.Response
		wantJSON string
	}{
		{
			name:     "data copied verbatim",
			in:       &graphql.Response{Data: json.RawMessage(`{"Media":{"id":1,"title":{"romaji":"Cowboy Bebop"}}}`)},
			wantJSON: `{"data":{"Media":{"id":1,"title":{"romaji":"Cowboy Bebop"}}}}`,
		},
		{
			name: "graphql errors kept beside data",
			in: &graphql.Response{
				Data:   json.RawMessage(`{"Media":null}`),
				Errors: []graphql.Error{{Message: "Not Found.", Status: 404}},
			},
			wantJSON: `{"data":{"Media":null},"errors":[{"message":"Not Found.","status":404}]}`,
		},
		{
			name:     "missing data becomes null",
			in:       &graphql.Response{},
			wantJSON: `{"data":null}`,
		},
		{
			name:     "nil response becomes null",
			in:       nil,
			wantJSON: `{"data":null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := json.Marshal(dto.ToMediaResponse(tt.in))
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(got) != tt.wantJSON {
				t.Errorf("json = %s, want %s", got, tt.wantJSON)
			}
		})
	}
}

func TestToOverviewResponse(t *testing.T) {
	t.Parallel()

	overview := &ports.MediaOverview{
		MediaID: 1,
		Parts: map[ports.OverviewPart]*graphql.Response{
			ports.OverviewDetails: {Data: json.RawMessage(`{"Media":{"id":1}}`)},
			ports.OverviewStats:   {Data: json.RawMessage(`{"Media":{"stats":{}}}`)},
		},
		Errors: []ports.OverviewError{
			{Part: ports.OverviewCharactersStaff, Err: fmt.Errorf("anilist: %w", domain.ErrUnavailable)},
			{Part: ports.OverviewRelations, Err: errors.New("boom")},
		},
	}

	got := dto.ToOverviewResponse(overview)

	if got.MediaID != 1 {
		t.Errorf("MediaID = %d, want 1", got.MediaID)
	}
	if len(got.Parts) != 2 {
		t.Fatalf("len(Parts) = %d, want 2", len(got.Parts))
	}
	if string(got.Parts[string(ports.OverviewDetails)].Data) != `{"Media":{"id":1}}` {
		t.Errorf("details data = %s", got.Parts[string(ports.OverviewDetails)].Data)
	}
	if len(got.Errors) != 2 {
		t.Fatalf("len(Errors) = %d, want 2", len(got.Errors))
	}
	if got.Errors[0].Part != string(ports.OverviewCharactersStaff) || got.Errors[0].Status != http.StatusBadGateway {
		t.Errorf("Errors[0] = %+v, want characters_staff with 502", got.Errors[0])
	}
	if got.Errors[1].Status != http.StatusInternalServerError || got.Errors[1].Detail != "boom" {
		t.Errorf("Errors[1] = %+v, want 500 boom", got.Errors[1])
	}
}

func TestToOverviewResponse_NoErrorsOmitted(t *testing.T) {
	t.Parallel()

	got, err := json.Marshal(dto.ToOverviewResponse(&ports.MediaOverview{MediaID: 7}))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(got) != `{"media_id":7,"parts":{}}` {
		t.Errorf("json = %s", got)
	}
}
