package dto_test

import (
	"errors"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/media-gateway/internal/adapters/clients/anilist/query"
	"github.com/jsamuelsen11/media-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen11/media-gateway/internal/domain"
	"github.com/jsamuelsen11/media-gateway/internal/domain/media"
)

var limits = dto.PageLimits{Default: 20, Max: 50}

func ptr[T any](v T) *T { return &v }

func mustQuery(t *testing.T, raw string) url.Values {
	t.Helper()
	v, err := url.ParseQuery(raw)
	if err != nil {
		t.Fatalf("ParseQuery(%q) error = %v", raw, err)
	}
	return v
}

// fieldsOf returns the field map of a *domain.ValidationError, or fails.
func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *domain.ValidationError", err)
	}
	return verr.Fields
}

func TestParsePage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		raw        string
		want       query.PageRequest
		wantFields map[string]string
	}{
		{
			name: "defaults",
			raw:  "",
			want: query.PageRequest{Page: 1, PerPage: 20},
		},
		{
			name: "explicit values",
			raw:  "page=3&per_page=50",
			want: query.PageRequest{Page: 3, PerPage: 50},
		},
		{
			name:       "zero page",
			raw:        "page=0",
			wantFields: map[string]string{"query.page": domain.MsgMustBePos},
		},
		{
			name:       "per_page above max",
			raw:        "per_page=51",
			wantFields: map[string]string{"query.per_page": "must be between 1 and 50"},
		},
		{
			name: "both malformed",
			raw:  "page=abc&per_page=-1",
			wantFields: map[string]string{
				"query.page":     "must be a valid integer",
				"query.per_page": "must be between 1 and 50",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := dto.ParsePage(mustQuery(t, tt.raw), limits)
			if tt.wantFields != nil {
				if diff := cmp.Diff(tt.wantFields, fieldsOf(t, err)); diff != "" {
					t.Errorf("fields mismatch (-want +got):\n%s", diff)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePage() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParsePage() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseSearchMedia_AllFilters(t *testing.T) {
	t.Parallel()

	raw := "type=anime&query=+bebop+&sort=popularity_desc,SCORE_DESC" +
		"&genre_in=Action&genre_in=Sci-Fi&genre_not_in=Ecchi&tag_in=Space,,Bounty+Hunters" +
		"&tag_not_in=Gore&format_in=tv,MOVIE&status_in=finished&start_year=1998&end_year=2001" +
		"&on_list=false&is_licensed=true&is_adult=false&country=jp&page=2&per_page=10"

	got, err := dto.ParseSearchMedia(mustQuery(t, raw), limits)
	if err != nil {
		t.Fatalf("ParseSearchMedia() error = %v", err)
	}

	want := query.SearchMediaParams{
		PageRequest: query.PageRequest{Page: 2, PerPage: 10},
		Type:        media.TypeAnime,
		Query:       " bebop ",
		Sort:        []media.Sort{media.SortPopularityDesc, media.SortScoreDesc},
		GenreIn:     []string{"Action", "Sci-Fi"},
		GenreNotIn:  []string{"Ecchi"},
		TagIn:       []string{"Space", "Bounty Hunters"},
		TagNotIn:    []string{"Gore"},
		FormatIn:    []media.Format{media.FormatTV, media.FormatMovie},
		StatusIn:    []media.Status{media.StatusFinished},
		StartYear:   ptr(1998),
		EndYear:     ptr(2001),
		OnList:      ptr(false),
		IsLicensed:  ptr(true),
		IsAdult:     ptr(false),
		Country:     ptr(media.CountryJapan),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseSearchMedia() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSearchMedia_Minimal(t *testing.T) {
	t.Parallel()

	got, err := dto.ParseSearchMedia(mustQuery(t, "type=MANGA"), limits)
	if err != nil {
		t.Fatalf("ParseSearchMedia() error = %v", err)
	}

	want := query.SearchMediaParams{
		PageRequest: query.PageRequest{Page: 1, PerPage: 20},
		Type:        media.TypeManga,
		Sort:        []media.Sort{media.SortPopularityDesc},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseSearchMedia() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSearchMedia_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		raw        string
		wantFields map[string]string
	}{
		{
			name:       "missing type",
			raw:        "query=bebop",
			wantFields: map[string]string{"query.type": domain.MsgRequired},
		},
		{
			name:       "unknown type",
			raw:        "type=novel",
			wantFields: map[string]string{"query.type": `invalid value: "novel"`},
		},
		{
			name: "every malformed filter reported",
			raw:  "type=ANIME&sort=RANDOM&format_in=TV,VHS&start_year=nineties&on_list=maybe&country=XX",
			wantFields: map[string]string{
				"query.sort":       `invalid value: "RANDOM"`,
				"query.format_in":  `invalid value: "VHS"`,
				"query.start_year": "must be a valid integer",
				"query.on_list":    "must be true or false",
				"query.country":    `invalid value: "XX"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := dto.ParseSearchMedia(mustQuery(t, tt.raw), limits)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("error = %v, want ErrValidation", err)
			}
			if diff := cmp.Diff(tt.wantFields, fieldsOf(t, err)); diff != "" {
				t.Errorf("fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseAiringAnimes(t *testing.T) {
	t.Parallel()

	got, err := dto.ParseAiringAnimes(mustQuery(t, "airing_at_greater=1700000000&airing_at_lesser=4102444800&sort=time"), limits)
	if err != nil {
		t.Fatalf("ParseAiringAnimes() error = %v", err)
	}

	want := query.AiringAnimesParams{
		PageRequest:     query.PageRequest{Page: 1, PerPage: 20},
		AiringAtGreater: ptr(int64(1700000000)),
		AiringAtLesser:  ptr(int64(4102444800)),
		Sort:            []media.AiringSort{media.AiringSortTime},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseAiringAnimes() mismatch (-want +got):\n%s", diff)
	}

	_, err = dto.ParseAiringAnimes(mustQuery(t, "airing_at_lesser=soon"), limits)
	if diff := cmp.Diff(map[string]string{"query.airing_at_lesser": "must be a valid integer"}, fieldsOf(t, err)); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMediaSorted(t *testing.T) {
	t.Parallel()

	got, err := dto.ParseMediaSorted(mustQuery(t, "type=anime&sort=trending_desc&sort=popularity_desc"), limits)
	if err != nil {
		t.Fatalf("ParseMediaSorted() error = %v", err)
	}

	want := query.MediaSortedParams{
		PageRequest: query.PageRequest{Page: 1, PerPage: 20},
		Type:        media.TypeAnime,
		Sort:        []media.Sort{media.SortTrendingDesc, media.SortPopularityDesc},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseMediaSorted() mismatch (-want +got):\n%s", diff)
	}

	_, err = dto.ParseMediaSorted(mustQuery(t, ""), limits)
	if diff := cmp.Diff(map[string]string{"query.type": domain.MsgRequired}, fieldsOf(t, err)); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMediaChart(t *testing.T) {
	t.Parallel()

	got, err := dto.ParseMediaChart(mustQuery(t, "type=ANIME&sort=SCORE_DESC&status=releasing&format=tv"), limits)
	if err != nil {
		t.Fatalf("ParseMediaChart() error = %v", err)
	}

	want := query.MediaChartParams{
		PageRequest: query.PageRequest{Page: 1, PerPage: 20},
		Type:        media.TypeAnime,
		Sort:        []media.Sort{media.SortScoreDesc},
		Status:      ptr(media.StatusReleasing),
		Format:      ptr(media.FormatTV),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseMediaChart() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_DefaultSort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		parse func(*testing.T) (any, error)
		want  any
	}{
		{
			name: "search with text",
			parse: func(t *testing.T) (any, error) {
				p, err := dto.ParseSearchMedia(mustQuery(t, "type=anime&query=bebop"), limits)
				return p.Sort, err
			},
			want: []media.Sort{media.SortSearchMatch},
		},
		{
			name: "search with blank text",
			parse: func(t *testing.T) (any, error) {
				p, err := dto.ParseSearchMedia(mustQuery(t, "type=anime&query=%20%20"), limits)
				return p.Sort, err
			},
			want: []media.Sort{media.SortPopularityDesc},
		},
		{
			name: "sorted",
			parse: func(t *testing.T) (any, error) {
				p, err := dto.ParseMediaSorted(mustQuery(t, "type=manga"), limits)
				return p.Sort, err
			},
			want: []media.Sort{media.SortPopularityDesc},
		},
		{
			name: "chart",
			parse: func(t *testing.T) (any, error) {
				p, err := dto.ParseMediaChart(mustQuery(t, "type=anime"), limits)
				return p.Sort, err
			},
			want: []media.Sort{media.SortScoreDesc},
		},
		{
			name: "airing",
			parse: func(t *testing.T) (any, error) {
				p, err := dto.ParseAiringAnimes(mustQuery(t, ""), limits)
				return p.Sort, err
			},
			want: []media.AiringSort{media.AiringSortTime},
		},
		{
			name: "explicit sort kept",
			parse: func(t *testing.T) (any, error) {
				p, err := dto.ParseSearchMedia(mustQuery(t, "type=anime&query=bebop&sort=trending_desc"), limits)
				return p.Sort, err
			},
			want: []media.Sort{media.SortTrendingDesc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.parse(t)
			if err != nil {
				t.Fatalf("parse error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("sort mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseSearchMedia_YearOutOfRangeRejectedByBuilder(t *testing.T) {
	t.Parallel()

	p, err := dto.ParseSearchMedia(mustQuery(t, "type=anime&start_year=300000"), limits)
	if err != nil {
		t.Fatalf("ParseSearchMedia() error = %v", err)
	}
	if _, err := query.SearchMedia(p); !errors.Is(err, query.ErrOutOfRange) {
		t.Errorf("SearchMedia() error = %v, want ErrOutOfRange", err)
	}
}

func TestParseID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    int
		wantMsg string
	}{
		{raw: "1", want: 1},
		{raw: "21", want: 21},
		{raw: "0", wantMsg: domain.MsgMustBePos},
		{raw: "-3", wantMsg: domain.MsgMustBePos},
		{raw: "abc", wantMsg: "must be a valid integer"},
		{raw: "", wantMsg: "must be a valid integer"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			got, err := dto.ParseID(tt.raw, "id")
			if tt.wantMsg != "" {
				if diff := cmp.Diff(map[string]string{"path.id": tt.wantMsg}, fieldsOf(t, err)); diff != "" {
					t.Errorf("fields mismatch (-want +got):\n%s", diff)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseID(%q) error = %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseID(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseSeason(t *testing.T) {
	t.Parallel()

	got, err := dto.ParseSeason("2016", "fall")
	if err != nil {
		t.Fatalf("ParseSeason() error = %v", err)
	}
	if got != (media.AnimeSeason{Year: 2016, Season: media.SeasonFall}) {
		t.Errorf("ParseSeason() = %v, want FALL 2016", got)
	}

	tests := []struct {
		name       string
		year       string
		season     string
		wantFields []string
	}{
		{name: "non numeric year", year: "next", season: "FALL", wantFields: []string{"path.year"}},
		{name: "unknown season", year: "2016", season: "monsoon", wantFields: []string{"path.season"}},
		{name: "year out of range", year: "1800", season: "WINTER", wantFields: []string{"path.year"}},
		{name: "both invalid", year: "3000", season: "x", wantFields: []string{"path.season", "path.year"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := dto.ParseSeason(tt.year, tt.season)
			fields := fieldsOf(t, err)
			if len(fields) != len(tt.wantFields) {
				t.Fatalf("fields = %v, want keys %v", fields, tt.wantFields)
			}
			for _, key := range tt.wantFields {
				if _, ok := fields[key]; !ok {
					t.Errorf("fields = %v, missing %q", fields, key)
				}
			}
		})
	}
}
