package ports

import (
	"context"

	"github.com/jsamuelsen11/media-gateway/internal/adapters/clients/anilist/graphql"
	"github.com/jsamuelsen11/media-gateway/internal/adapters/clients/anilist/query"
	"github.com/jsamuelsen11/media-gateway/internal/domain/media"
)

// MediaAPI is the client port for AniList media queries. Implemented by the
// anilist adapter; called by the application layer.
//
// Every method builds exactly one GraphQL request and executes it once. The
// reply is returned as received: no retries beyond the transport's own, no
// reshaping of data. Identifier and pagination violations fail with a
// domain.ErrValidation before anything is sent.
type MediaAPI interface {
	// SearchMedia searches the catalogue with the given filters.
	SearchMedia(ctx context.Context, params query.SearchMediaParams) (*graphql.Response, error)

	// GenreTagCollection lists every genre and media tag AniList knows.
	GenreTagCollection(ctx context.Context) (*graphql.Response, error)

	// AiringAnimes lists airing schedule entries within a time window.
	AiringAnimes(ctx context.Context, params query.AiringAnimesParams) (*graphql.Response, error)

	// AiringOnMyList lists airing entries on the authenticated viewer's list.
	AiringOnMyList(ctx context.Context, page query.PageRequest) (*graphql.Response, error)

	// SeasonalAnime lists one broadcast season ordered by popularity.
	SeasonalAnime(ctx context.Context, season media.AnimeSeason, page query.PageRequest) (*graphql.Response, error)

	// MediaSorted lists one media type in the given order.
	MediaSorted(ctx context.Context, params query.MediaSortedParams) (*graphql.Response, error)

	// MediaChart is MediaSorted with optional status and format filters.
	MediaChart(ctx context.Context, params query.MediaChartParams) (*graphql.Response, error)

	// MediaDetails fetches one media entry.
	MediaDetails(ctx context.Context, mediaID int) (*graphql.Response, error)

	// MediaCharactersAndStaff fetches the cast and staff of one media entry.
	MediaCharactersAndStaff(ctx context.Context, mediaID int) (*graphql.Response, error)

	// MediaRelationsAndRecommendations fetches related entries and
	// recommendations for one media entry.
	MediaRelationsAndRecommendations(ctx context.Context, mediaID int) (*graphql.Response, error)

	// MediaStats fetches rankings and score/status distributions.
	MediaStats(ctx context.Context, mediaID int) (*graphql.Response, error)

	// MediaReviews pages through reviews of one media entry.
	MediaReviews(ctx context.Context, mediaID int, page query.PageRequest) (*graphql.Response, error)

	// MediaThreads pages through forum threads of one media entry, newest
	// first. A zero page selects the first page of 25.
	MediaThreads(ctx context.Context, mediaID int, page query.PageRequest) (*graphql.Response, error)

	// UserCurrentAnimeList fetches the CURRENT anime list of a user.
	UserCurrentAnimeList(ctx context.Context, userID int) (*graphql.Response, error)
}
