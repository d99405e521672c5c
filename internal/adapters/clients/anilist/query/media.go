package query

import (
	"github.com/jsamuelsen11/media-gateway/internal/domain/media"
	"github.com/jsamuelsen11/media-gateway/internal/platform/optional"
)

// Thread listing defaults applied when the caller leaves pagination unset.
const (
	defaultThreadsPage    = 1
	defaultThreadsPerPage = 25
)

// SearchMediaParams are the inputs of the catalogue search. Nil pointers,
// nil or empty slices, and a blank Query all mean "no filter".
type SearchMediaParams struct {
	PageRequest

	Type       media.Type             `json:"type"`
	Query      string                 `json:"query"`
	Sort       []media.Sort           `json:"sort"`
	GenreIn    []string               `json:"genre_in"`
	GenreNotIn []string               `json:"genre_not_in"`
	TagIn      []string               `json:"tag_in"`
	TagNotIn   []string               `json:"tag_not_in"`
	FormatIn   []media.Format         `json:"format_in"`
	StatusIn   []media.Status         `json:"status_in"`
	StartYear  *int                   `json:"start_year"`
	EndYear    *int                   `json:"end_year"`
	OnList     *bool                  `json:"on_list"`
	IsLicensed *bool                  `json:"is_licensed"`
	IsAdult    *bool                  `json:"is_adult"`
	Country    *media.CountryOfOrigin `json:"country"`
}

// SearchMedia builds the catalogue search. Type is required. StartYear is
// sent as an exclusive lower start-date bound and EndYear as an exclusive
// upper one; a year whose encoding overflows a GraphQL Int is rejected.
func SearchMedia(p SearchMediaParams) (*Request, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if err := requireType(OpSearchMedia, p.Type); err != nil {
		return nil, err
	}
	if err := requireDateBound(OpSearchMedia, "startDateGreater", p.StartYear); err != nil {
		return nil, err
	}
	if err := requireDateBound(OpSearchMedia, "startDateLesser", p.EndYear); err != nil {
		return nil, err
	}

	return p.apply(newRequest(OpSearchMedia)).
		set("type", optional.Present(p.Type)).
		set("sort", alwaysList(p.Sort)).
		set("search", optional.NonBlank(p.Query)).
		set("genre_in", optional.NonEmpty(p.GenreIn)).
		set("genre_not_in", optional.NonEmpty(p.GenreNotIn)).
		set("tag_in", optional.NonEmpty(p.TagIn)).
		set("tag_not_in", optional.NonEmpty(p.TagNotIn)).
		set("format_in", optional.NonEmpty(p.FormatIn)).
		set("status_in", optional.NonEmpty(p.StatusIn)).
		set("startDateGreater", DateBound(p.StartYear)).
		set("startDateLesser", DateBound(p.EndYear)).
		set("onList", optional.PresentIfNotNil(p.OnList)).
		set("isLicensed", optional.PresentIfNotNil(p.IsLicensed)).
		set("isAdult", optional.PresentIfNotNil(p.IsAdult)).
		set("country", optional.PresentIfNotNil(p.Country)), nil
}

// GenreTagCollection builds the request for every known genre and tag.
// It declares no variables.
func GenreTagCollection() *Request {
	return newRequest(OpGenreTagCollection)
}

// AiringAnimesParams bound an airing schedule window in unix seconds. A nil
// bound leaves that side of the window open.
type AiringAnimesParams struct {
	PageRequest

	AiringAtGreater *int64             `json:"airing_at_greater"`
	AiringAtLesser  *int64             `json:"airing_at_lesser"`
	Sort            []media.AiringSort `json:"sort"`
}

// AiringAnimes builds the airing schedule listing.
func AiringAnimes(p AiringAnimesParams) (*Request, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if err := requireInt32(OpAiringAnimes, "airingAtGreater", p.AiringAtGreater); err != nil {
		return nil, err
	}
	if err := requireInt32(OpAiringAnimes, "airingAtLesser", p.AiringAtLesser); err != nil {
		return nil, err
	}

	return p.apply(newRequest(OpAiringAnimes)).
		set("sort", alwaysList(p.Sort)).
		set("airingAtGreater", optional.PresentIfNotNil(p.AiringAtGreater)).
		set("airingAtLesser", optional.PresentIfNotNil(p.AiringAtLesser)), nil
}

// AiringOnMyList builds the listing of airing entries on the viewer's list.
// The viewer is identified by the bearer token the transport forwards.
func AiringOnMyList(page PageRequest) (*Request, error) {
	if err := page.validate(); err != nil {
		return nil, err
	}
	return page.apply(newRequest(OpAiringOnMyList)), nil
}

// SeasonalAnime builds the listing for one broadcast season. The ordering is
// always POPULARITY_DESC.
func SeasonalAnime(season media.AnimeSeason, page PageRequest) (*Request, error) {
	if err := page.validate(); err != nil {
		return nil, err
	}

	return page.apply(newRequest(OpSeasonalAnime)).
		set("season", optional.Present(season.Season)).
		set("seasonYear", optional.Present(season.Year)).
		set("sort", optional.Present([]media.Sort{media.SortPopularityDesc})), nil
}

// MediaSortedParams select one media type ordered by the given keys.
type MediaSortedParams struct {
	PageRequest

	Type media.Type   `json:"type"`
	Sort []media.Sort `json:"sort"`
}

// MediaSorted builds a listing of one media type in the given order.
func MediaSorted(p MediaSortedParams) (*Request, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if err := requireType(OpMediaSorted, p.Type); err != nil {
		return nil, err
	}

	return p.apply(newRequest(OpMediaSorted)).
		set("type", optional.Present(p.Type)).
		set("sort", alwaysList(p.Sort)), nil
}

// MediaChartParams are MediaSortedParams plus optional status and format
// filters.
type MediaChartParams struct {
	PageRequest

	Type   media.Type    `json:"type"`
	Sort   []media.Sort  `json:"sort"`
	Status *media.Status `json:"status"`
	Format *media.Format `json:"format"`
}

// MediaChart builds a ranked chart listing.
func MediaChart(p MediaChartParams) (*Request, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if err := requireType(OpMediaChart, p.Type); err != nil {
		return nil, err
	}

	return p.apply(newRequest(OpMediaChart)).
		set("type", optional.Present(p.Type)).
		set("sort", alwaysList(p.Sort)).
		set("status", optional.PresentIfNotNil(p.Status)).
		set("format", optional.PresentIfNotNil(p.Format)), nil
}

// MediaDetails builds the detail lookup for one media entry.
func MediaDetails(mediaID int) (*Request, error) {
	return byMediaID(OpMediaDetails, mediaID)
}

// MediaCharactersAndStaff builds the cast and crew lookup for one entry.
func MediaCharactersAndStaff(mediaID int) (*Request, error) {
	return byMediaID(OpMediaCharactersAndStaff, mediaID)
}

// MediaRelationsAndRecommendations builds the related-media lookup.
func MediaRelationsAndRecommendations(mediaID int) (*Request, error) {
	return byMediaID(OpMediaRelationsAndRecommendations, mediaID)
}

// MediaStats builds the score and status distribution lookup.
func MediaStats(mediaID int) (*Request, error) {
	return byMediaID(OpMediaStats, mediaID)
}

// MediaReviews builds a page of reviews for one entry.
func MediaReviews(mediaID int, page PageRequest) (*Request, error) {
	if err := requireID(OpMediaReviews, "mediaId", mediaID); err != nil {
		return nil, err
	}
	if err := page.validate(); err != nil {
		return nil, err
	}

	return page.apply(newRequest(OpMediaReviews)).
		set("mediaId", optional.Present(mediaID)), nil
}

// MediaThreads builds a page of forum threads for one entry, newest first.
// A zero Page or PerPage falls back to page 1 of 25.
func MediaThreads(mediaID int, page PageRequest) (*Request, error) {
	if err := requireID(OpMediaThreads, "mediaCategoryId", mediaID); err != nil {
		return nil, err
	}
	if page.Page == 0 {
		page.Page = defaultThreadsPage
	}
	if page.PerPage == 0 {
		page.PerPage = defaultThreadsPerPage
	}
	if err := page.validate(); err != nil {
		return nil, err
	}

	return page.apply(newRequest(OpMediaThreads)).
		set("mediaCategoryId", optional.Present(mediaID)).
		set("sort", optional.Present([]media.ThreadSort{media.ThreadSortCreatedAtDesc})), nil
}

// UserCurrentAnimeList builds the lookup of a user's currently watching list.
func UserCurrentAnimeList(userID int) (*Request, error) {
	if err := requireID(OpUserCurrentAnimeList, "userId", userID); err != nil {
		return nil, err
	}
	return newRequest(OpUserCurrentAnimeList).
		set("userId", optional.Present(userID)), nil
}

func byMediaID(op Operation, mediaID int) (*Request, error) {
	if err := requireID(op, "mediaId", mediaID); err != nil {
		return nil, err
	}
	return newRequest(op).set("mediaId", optional.Present(mediaID)), nil
}
