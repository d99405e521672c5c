package query_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/media-gateway/internal/adapters/clients/anilist/query"
	"github.com/jsamuelsen11/media-gateway/internal/domain"
	"github.com/jsamuelsen11/media-gateway/internal/domain/media"
)

func ptr[T any](v T) *T { return &v }

func defaultSearch() query.SearchMediaParams {
	return query.SearchMediaParams{
		PageRequest: query.PageRequest{Page: 1, PerPage: 20},
		Type:        media.TypeAnime,
		Sort:        []media.Sort{media.SortSearchMatch},
	}
}

func TestSearchMedia_OnlyRequiredFieldsPresent(t *testing.T) {
	t.Parallel()

	req, err := query.SearchMedia(defaultSearch())
	require.NoError(t, err)

	want := []string{"page", "perPage", "sort", "type"}
	if diff := cmp.Diff(want, req.PresentFields()); diff != "" {
		t.Errorf("PresentFields() mismatch (-want +got):\n%s", diff)
	}

	vars := req.Variables()
	assert.Equal(t, 1, vars["page"])
	assert.Equal(t, 20, vars["perPage"])
	assert.Equal(t, media.TypeAnime, vars["type"])
	assert.Equal(t, []media.Sort{media.SortSearchMatch}, vars["sort"])
}

func TestSearchMedia_DeclaresEveryFilter(t *testing.T) {
	t.Parallel()

	req, err := query.SearchMedia(defaultSearch())
	require.NoError(t, err)

	want := []string{
		"country", "format_in", "genre_in", "genre_not_in", "isAdult", "isLicensed",
		"onList", "page", "perPage", "search", "sort", "startDateGreater",
		"startDateLesser", "status_in", "tag_in", "tag_not_in", "type",
	}
	if diff := cmp.Diff(want, req.FieldNames()); diff != "" {
		t.Errorf("FieldNames() mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchMedia_SearchText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		query       string
		wantPresent bool
		want        string
	}{
		{name: "empty", query: ""},
		{name: "spaces", query: "    "},
		{name: "tabs and newlines", query: "\t\n "},
		{name: "plain", query: "bebop", wantPresent: true, want: "bebop"},
		{name: "padded", query: "  cowboy bebop  ", wantPresent: true, want: "cowboy bebop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := defaultSearch()
			p.Query = tt.query
			req, err := query.SearchMedia(p)
			require.NoError(t, err)

			f := req.Field("search")
			assert.Equal(t, tt.wantPresent, f.IsPresent())
			if tt.wantPresent {
				assert.Equal(t, tt.want, f.Value())
			}
		})
	}
}

func TestSearchMedia_ListFilters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		field string
		set   func(*query.SearchMediaParams, bool)
		want  any
	}{
		{
			name: "genre_in", field: "genre_in",
			set: func(p *query.SearchMediaParams, empty bool) {
				p.GenreIn = pick(empty, []string{"Drama", "Action"})
			},
			want: []string{"Drama", "Action"},
		},
		{
			name: "genre_not_in", field: "genre_not_in",
			set: func(p *query.SearchMediaParams, empty bool) {
				p.GenreNotIn = pick(empty, []string{"Hentai"})
			},
			want: []string{"Hentai"},
		},
		{
			name: "tag_in", field: "tag_in",
			set: func(p *query.SearchMediaParams, empty bool) {
				p.TagIn = pick(empty, []string{"Robots", "Space"})
			},
			want: []string{"Robots", "Space"},
		},
		{
			name: "tag_not_in", field: "tag_not_in",
			set: func(p *query.SearchMediaParams, empty bool) {
				p.TagNotIn = pick(empty, []string{"Gore"})
			},
			want: []string{"Gore"},
		},
		{
			name: "format_in", field: "format_in",
			set: func(p *query.SearchMediaParams, empty bool) {
				p.FormatIn = pick(empty, []media.Format{media.FormatMovie, media.FormatTV})
			},
			want: []media.Format{media.FormatMovie, media.FormatTV},
		},
		{
			name: "status_in", field: "status_in",
			set: func(p *query.SearchMediaParams, empty bool) {
				p.StatusIn = pick(empty, []media.Status{media.StatusReleasing})
			},
			want: []media.Status{media.StatusReleasing},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			nilParams := defaultSearch()
			req, err := query.SearchMedia(nilParams)
			require.NoError(t, err)
			assert.False(t, req.Field(tt.field).IsPresent(), "nil list must be absent")

			emptyParams := defaultSearch()
			tt.set(&emptyParams, true)
			req, err = query.SearchMedia(emptyParams)
			require.NoError(t, err)
			assert.False(t, req.Field(tt.field).IsPresent(), "empty list must be absent")

			fullParams := defaultSearch()
			tt.set(&fullParams, false)
			req, err = query.SearchMedia(fullParams)
			require.NoError(t, err)
			require.True(t, req.Field(tt.field).IsPresent())
			assert.Equal(t, tt.want, req.Field(tt.field).Value(), "contents and order must be unchanged")
		})
	}
}

// pick returns an empty, non-nil slice when empty is set, full otherwise.
func pick[S ~[]E, E any](empty bool, full S) S {
	if empty {
		return S{}
	}
	return full
}

func TestSearchMedia_NullableScalars(t *testing.T) {
	t.Parallel()

	p := defaultSearch()
	req, err := query.SearchMedia(p)
	require.NoError(t, err)
	for _, name := range []string{"onList", "isLicensed", "isAdult", "country"} {
		assert.False(t, req.Field(name).IsPresent(), "%s should be absent when nil", name)
	}

	p.OnList = ptr(false)
	p.IsLicensed = ptr(true)
	p.IsAdult = ptr(false)
	p.Country = ptr(media.CountrySouthKorea)
	req, err = query.SearchMedia(p)
	require.NoError(t, err)

	assert.Equal(t, false, req.Field("onList").Value())
	assert.Equal(t, true, req.Field("isLicensed").Value())
	assert.Equal(t, false, req.Field("isAdult").Value())
	assert.Equal(t, media.CountrySouthKorea, req.Field("country").Value())
}

func TestSearchMedia_YearBounds(t *testing.T) {
	t.Parallel()

	p := defaultSearch()
	p.StartYear = ptr(2016)
	req, err := query.SearchMedia(p)
	require.NoError(t, err)

	assert.Equal(t, 20160000, req.Field("startDateGreater").Value())
	assert.False(t, req.Field("startDateLesser").IsPresent())
}

func TestSearchMedia_YearBoundsNotCrossValidated(t *testing.T) {
	t.Parallel()

	p := defaultSearch()
	p.StartYear = ptr(2020)
	p.EndYear = ptr(1990)
	req, err := query.SearchMedia(p)
	require.NoError(t, err)

	assert.Equal(t, 20200000, req.Field("startDateGreater").Value())
	assert.Equal(t, 19900000, req.Field("startDateLesser").Value())
}

func TestSearchMedia_YearBoundOutsideInt32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start *int
		end   *int
	}{
		{name: "start year", start: ptr(300000)},
		{name: "end year", end: ptr(300000)},
		{name: "negative year", start: ptr(-300000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := defaultSearch()
			p.StartYear, p.EndYear = tt.start, tt.end
			req, err := query.SearchMedia(p)
			assert.Nil(t, req)
			require.ErrorIs(t, err, query.ErrOutOfRange)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	p := defaultSearch()
	p.EndYear = ptr(214748)
	req, err := query.SearchMedia(p)
	require.NoError(t, err)
	assert.Equal(t, 2147480000, req.Field("startDateLesser").Value())
}

func TestTypedOperations_RejectMissingType(t *testing.T) {
	t.Parallel()

	page := query.PageRequest{Page: 1, PerPage: 10}
	builders := map[string]func(media.Type) (*query.Request, error){
		"SearchMedia": func(typ media.Type) (*query.Request, error) {
			return query.SearchMedia(query.SearchMediaParams{PageRequest: page, Type: typ, Query: "x"})
		},
		"MediaSorted": func(typ media.Type) (*query.Request, error) {
			return query.MediaSorted(query.MediaSortedParams{PageRequest: page, Type: typ})
		},
		"MediaChart": func(typ media.Type) (*query.Request, error) {
			return query.MediaChart(query.MediaChartParams{PageRequest: page, Type: typ})
		},
	}

	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			for _, typ := range []media.Type{"", "NOVEL"} {
				req, err := build(typ)
				assert.Nil(t, req)
				require.ErrorIs(t, err, query.ErrInvalidType, "type %q", typ)
				assert.ErrorIs(t, err, domain.ErrValidation)
			}
		})
	}
}

func TestSearchMedia_NilSortIsSentAsEmptyList(t *testing.T) {
	t.Parallel()

	p := defaultSearch()
	p.Sort = nil
	req, err := query.SearchMedia(p)
	require.NoError(t, err)

	require.True(t, req.Field("sort").IsPresent())
	body, err := json.Marshal(req)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"sort":[]`)
}

func TestDateBound(t *testing.T) {
	t.Parallel()

	assert.False(t, query.DateBound(nil).IsPresent())
	assert.Equal(t, 20160000, query.DateBound(ptr(2016)).MustGet())
	assert.Equal(t, 19400000, query.DateBound(ptr(1940)).MustGet())
}

func TestSeasonalAnime_SortIsFixed(t *testing.T) {
	t.Parallel()

	season := media.AnimeSeason{Year: 2016, Season: media.SeasonFall}
	req, err := query.SeasonalAnime(season, query.PageRequest{Page: 3, PerPage: 50})
	require.NoError(t, err)

	assert.Equal(t, []media.Sort{media.SortPopularityDesc}, req.Field("sort").Value())
	assert.Equal(t, media.SeasonFall, req.Field("season").Value())
	assert.Equal(t, 2016, req.Field("seasonYear").Value())
	assert.Equal(t, 3, req.Field("page").Value())
	assert.Equal(t, 50, req.Field("perPage").Value())
}

func TestSeasonalAnime_SortNotShared(t *testing.T) {
	t.Parallel()

	season := media.AnimeSeason{Year: 2016, Season: media.SeasonFall}
	first, err := query.SeasonalAnime(season, query.PageRequest{Page: 1, PerPage: 1})
	require.NoError(t, err)
	first.Variables()["sort"].([]media.Sort)[0] = media.SortID

	second, err := query.SeasonalAnime(season, query.PageRequest{Page: 1, PerPage: 1})
	require.NoError(t, err)
	assert.Equal(t, []media.Sort{media.SortPopularityDesc}, second.Field("sort").Value())
}

func TestMediaThreads(t *testing.T) {
	t.Parallel()

	t.Run("defaults pagination", func(t *testing.T) {
		t.Parallel()
		req, err := query.MediaThreads(1, query.PageRequest{})
		require.NoError(t, err)
		assert.Equal(t, 1, req.Field("page").Value())
		assert.Equal(t, 25, req.Field("perPage").Value())
	})

	t.Run("keeps explicit pagination", func(t *testing.T) {
		t.Parallel()
		req, err := query.MediaThreads(1, query.PageRequest{Page: 4, PerPage: 10})
		require.NoError(t, err)
		assert.Equal(t, 4, req.Field("page").Value())
		assert.Equal(t, 10, req.Field("perPage").Value())
	})

	t.Run("sort is fixed newest first", func(t *testing.T) {
		t.Parallel()
		req, err := query.MediaThreads(30, query.PageRequest{})
		require.NoError(t, err)
		assert.Equal(t, []media.ThreadSort{media.ThreadSortCreatedAtDesc}, req.Field("sort").Value())
		assert.Equal(t, 30, req.Field("mediaCategoryId").Value())
	})
}

func TestAiringAnimes(t *testing.T) {
	t.Parallel()

	req, err := query.AiringAnimes(query.AiringAnimesParams{
		PageRequest:     query.PageRequest{Page: 1, PerPage: 15},
		AiringAtGreater: ptr(int64(1700000000)),
		Sort:            []media.AiringSort{media.AiringSortTime},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1700000000), req.Field("airingAtGreater").Value())
	assert.False(t, req.Field("airingAtLesser").IsPresent())
	assert.Equal(t, []media.AiringSort{media.AiringSortTime}, req.Field("sort").Value())
}

func TestAiringAnimes_BoundOutsideInt32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		p    query.AiringAnimesParams
	}{
		{
			name: "greater after 2038",
			p: query.AiringAnimesParams{
				PageRequest:     query.PageRequest{Page: 1, PerPage: 15},
				AiringAtGreater: ptr(int64(4102444800)),
			},
		},
		{
			name: "lesser below range",
			p: query.AiringAnimesParams{
				PageRequest:    query.PageRequest{Page: 1, PerPage: 15},
				AiringAtLesser: ptr(int64(-1 << 40)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req, err := query.AiringAnimes(tt.p)
			assert.Nil(t, req)
			require.ErrorIs(t, err, query.ErrOutOfRange)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	req, err := query.AiringAnimes(query.AiringAnimesParams{
		PageRequest:    query.PageRequest{Page: 1, PerPage: 15},
		AiringAtLesser: ptr(int64(2147483647)),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2147483647), req.Field("airingAtLesser").Value())
}

func TestMediaChart_OptionalFilters(t *testing.T) {
	t.Parallel()

	p := query.MediaChartParams{
		PageRequest: query.PageRequest{Page: 1, PerPage: 25},
		Type:        media.TypeManga,
		Sort:        []media.Sort{media.SortScoreDesc},
	}
	req, err := query.MediaChart(p)
	require.NoError(t, err)
	assert.False(t, req.Field("status").IsPresent())
	assert.False(t, req.Field("format").IsPresent())

	p.Status = ptr(media.StatusFinished)
	p.Format = ptr(media.FormatNovel)
	req, err = query.MediaChart(p)
	require.NoError(t, err)
	assert.Equal(t, media.StatusFinished, req.Field("status").Value())
	assert.Equal(t, media.FormatNovel, req.Field("format").Value())
}

func TestMediaSorted(t *testing.T) {
	t.Parallel()

	req, err := query.MediaSorted(query.MediaSortedParams{
		PageRequest: query.PageRequest{Page: 1, PerPage: 10},
		Type:        media.TypeAnime,
		Sort:        []media.Sort{media.SortTrendingDesc, media.SortPopularityDesc},
	})
	require.NoError(t, err)

	want := []string{"page", "perPage", "sort", "type"}
	if diff := cmp.Diff(want, req.PresentFields()); diff != "" {
		t.Errorf("PresentFields() mismatch (-want +got):\n%s", diff)
	}
}

func TestIdentifierOperations_RejectNonPositive(t *testing.T) {
	t.Parallel()

	page := query.PageRequest{Page: 1, PerPage: 10}
	builders := map[string]func(int) (*query.Request, error){
		"MediaDetails":                     query.MediaDetails,
		"MediaCharactersAndStaff":          query.MediaCharactersAndStaff,
		"MediaRelationsAndRecommendations": query.MediaRelationsAndRecommendations,
		"MediaStats":                       query.MediaStats,
		"UserCurrentAnimeList":             query.UserCurrentAnimeList,
		"MediaReviews": func(id int) (*query.Request, error) {
			return query.MediaReviews(id, page)
		},
		"MediaThreads": func(id int) (*query.Request, error) {
			return query.MediaThreads(id, page)
		},
	}

	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			for _, id := range []int{0, -1} {
				req, err := build(id)
				assert.Nil(t, req, "no request may be built for id %d", id)
				assert.ErrorIs(t, err, query.ErrInvalidID)
				assert.ErrorIs(t, err, domain.ErrValidation)
			}

			req, err := build(42)
			require.NoError(t, err)
			assert.NotNil(t, req)
		})
	}
}

func TestIdentifierOperations_SendID(t *testing.T) {
	t.Parallel()

	req, err := query.MediaDetails(1)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"mediaId"}, req.PresentFields()); diff != "" {
		t.Errorf("PresentFields() mismatch (-want +got):\n%s", diff)
	}

	req, err = query.UserCurrentAnimeList(5)
	require.NoError(t, err)
	assert.Equal(t, 5, req.Field("userId").Value())
}

func TestPagedOperations_RejectInvalidPage(t *testing.T) {
	t.Parallel()

	bad := []query.PageRequest{{Page: 0, PerPage: 10}, {Page: 1, PerPage: 0}, {Page: -1, PerPage: -1}}
	for _, page := range bad {
		p := defaultSearch()
		p.PageRequest = page
		req, err := query.SearchMedia(p)
		assert.Nil(t, req)
		assert.ErrorIs(t, err, query.ErrInvalidPage)

		req, err = query.AiringOnMyList(page)
		assert.Nil(t, req)
		assert.ErrorIs(t, err, query.ErrInvalidPage)
	}

	req, err := query.MediaThreads(1, query.PageRequest{Page: -2})
	assert.Nil(t, req)
	assert.ErrorIs(t, err, query.ErrInvalidPage)
}

func TestGenreTagCollection_NoVariables(t *testing.T) {
	t.Parallel()

	req := query.GenreTagCollection()
	assert.Empty(t, req.FieldNames())
	assert.Empty(t, req.Variables())
	assert.True(t, strings.HasPrefix(req.Document, "query GenreTagCollection"))
}

func TestRequest_FieldUndeclaredIsAbsent(t *testing.T) {
	t.Parallel()

	req, err := query.MediaDetails(1)
	require.NoError(t, err)
	assert.False(t, req.Field("search").IsPresent())
}

func TestRequest_MarshalJSONOmitsAbsent(t *testing.T) {
	t.Parallel()

	req, err := query.SearchMedia(defaultSearch())
	require.NoError(t, err)

	body, err := json.Marshal(req)
	require.NoError(t, err)

	var wire struct {
		OperationName string         `json:"operationName"`
		Query         string         `json:"query"`
		Variables     map[string]any `json:"variables"`
	}
	require.NoError(t, json.Unmarshal(body, &wire))

	assert.Equal(t, "SearchMedia", wire.OperationName)
	assert.Contains(t, wire.Query, "query SearchMedia(")
	assert.Len(t, wire.Variables, 4)
	_, hasSearch := wire.Variables["search"]
	assert.False(t, hasSearch, "absent field must be omitted, not sent as null")
}

func TestErrors_AreValidationErrors(t *testing.T) {
	t.Parallel()

	assert.True(t, errors.Is(query.ErrInvalidID, domain.ErrValidation))
	assert.True(t, errors.Is(query.ErrInvalidPage, domain.ErrValidation))
	assert.True(t, errors.Is(query.ErrInvalidType, domain.ErrValidation))
}
