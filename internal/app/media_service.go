// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jsamuelsen11/media-gateway/internal/adapters/clients/anilist/graphql"
	"github.com/jsamuelsen11/media-gateway/internal/adapters/clients/anilist/query"
	"github.com/jsamuelsen11/media-gateway/internal/app/fanout"
	"github.com/jsamuelsen11/media-gateway/internal/domain/media"
	"github.com/jsamuelsen11/media-gateway/internal/ports"
)

// Compile-time check that MediaService implements ports.MediaService.
var _ ports.MediaService = (*MediaService)(nil)

const (
	defaultOverviewWorkers = 4
	genreTagFlightKey      = "genre-tag-collection"
)

// MediaService implements ports.MediaService on top of the MediaAPI port.
// Single-operation methods log and delegate. Replies are never cached.
type MediaService struct {
	api             ports.MediaAPI
	logger          *slog.Logger
	flights         singleflight.Group
	overviewWorkers int
	now             func() time.Time
}

// Option configures a MediaService.
type Option func(*MediaService)

// WithOverviewWorkers bounds how many MediaOverview parts are fetched at
// once. Values below 1 are ignored.
func WithOverviewWorkers(n int) Option {
	return func(s *MediaService) {
		if n >= 1 {
			s.overviewWorkers = n
		}
	}
}

// WithClock replaces the time source used by CurrentSeason.
func WithClock(now func() time.Time) Option {
	return func(s *MediaService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewMediaService creates a MediaService. A nil logger discards logs.
func NewMediaService(api ports.MediaAPI, logger *slog.Logger, opts ...Option) *MediaService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &MediaService{
		api:             api,
		logger:          logger,
		overviewWorkers: defaultOverviewWorkers,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SearchMedia searches the catalogue.
func (s *MediaService) SearchMedia(ctx context.Context, p query.SearchMediaParams) (*graphql.Response, error) {
	s.logger.InfoContext(ctx, "searching media",
		slog.String("type", p.Type.String()),
		slog.String("query", p.Query),
		slog.Int("page", p.Page),
	)
	return s.logged(ctx, "SearchMedia", nil)(s.api.SearchMedia(ctx, p))
}

// GenreTagCollection lists all genres and tags. Concurrent callers share one
// in-flight request and receive the same *graphql.Response, which they must
// treat as read-only. Nothing is kept once the request completes.
func (s *MediaService) GenreTagCollection(ctx context.Context) (*graphql.Response, error) {
	s.logger.InfoContext(ctx, "fetching genre and tag collection")

	// The shared call must outlive any single caller's cancellation.
	ch := s.flights.DoChan(genreTagFlightKey, func() (any, error) {
		return s.api.GenreTagCollection(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Shared {
			s.logger.DebugContext(ctx, "joined in-flight genre and tag request")
		}
		resp, _ := res.Val.(*graphql.Response)
		return s.logged(ctx, "GenreTagCollection", nil)(resp, res.Err)
	}
}

// AiringAnimes lists airing schedule entries.
func (s *MediaService) AiringAnimes(ctx context.Context, p query.AiringAnimesParams) (*graphql.Response, error) {
	s.logger.InfoContext(ctx, "listing airing schedule", slog.Int("page", p.Page))
	return s.logged(ctx, "AiringAnimes", nil)(s.api.AiringAnimes(ctx, p))
}

// AiringOnMyList lists airing entries on the viewer's list.
func (s *MediaService) AiringOnMyList(ctx context.Context, page query.PageRequest) (*graphql.Response, error) {
	s.logger.InfoContext(ctx, "listing airing entries on viewer list", slog.Int("page", page.Page))
	return s.logged(ctx, "AiringOnMyList", nil)(s.api.AiringOnMyList(ctx, page))
}

// SeasonalAnime lists one broadcast season. The season is validated here so
// an out-of-range year never reaches AniList.
func (s *MediaService) SeasonalAnime(ctx context.Context, season media.AnimeSeason, page query.PageRequest) (*graphql.Response, error) {
	if err := season.Validate(); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "listing seasonal anime",
		slog.String("season", season.String()),
		slog.Int("page", page.Page),
	)
	return s.logged(ctx, "SeasonalAnime", []any{slog.String("season", season.String())})(
		s.api.SeasonalAnime(ctx, season, page))
}

// CurrentSeason lists the season in progress according to the service clock.
func (s *MediaService) CurrentSeason(ctx context.Context, page query.PageRequest) (*graphql.Response, error) {
	return s.SeasonalAnime(ctx, media.SeasonOf(s.now()), page)
}

// MediaSorted lists one media type in the given order.
func (s *MediaService) MediaSorted(ctx context.Context, p query.MediaSortedParams) (*graphql.Response, error) {
	s.logger.InfoContext(ctx, "listing sorted media", slog.String("type", p.Type.String()))
	return s.logged(ctx, "MediaSorted", nil)(s.api.MediaSorted(ctx, p))
}

// MediaChart lists a chart of one media type.
func (s *MediaService) MediaChart(ctx context.Context, p query.MediaChartParams) (*graphql.Response, error) {
	s.logger.InfoContext(ctx, "listing media chart", slog.String("type", p.Type.String()))
	return s.logged(ctx, "MediaChart", nil)(s.api.MediaChart(ctx, p))
}

// MediaDetails fetches one media entry.
func (s *MediaService) MediaDetails(ctx context.Context, mediaID int) (*graphql.Response, error) {
	s.logger.InfoContext(ctx, "fetching media details", slog.Int("media_id", mediaID))
	return s.logged(ctx, "MediaDetails", mediaAttrs(mediaID))(s.api.MediaDetails(ctx, mediaID))
}

// MediaCharactersAndStaff fetches cast and staff.
func (s *MediaService) MediaCharactersAndStaff(ctx context.Context, mediaID int) (*graphql.Response, error) {
	s.logger.InfoContext(ctx, "fetching characters and staff", slog.Int("media_id", mediaID))
	return s.logged(ctx, "MediaCharactersAndStaff", mediaAttrs(mediaID))(s.api.MediaCharactersAndStaff(ctx, mediaID))
}

// MediaRelationsAndRecommendations fetches relations and recommendations.
func (s *MediaService) MediaRelationsAndRecommendations(ctx context.Context, mediaID int) (*graphql.Response, error) {
	s.logger.InfoContext(ctx, "fetching relations and recommendations", slog.Int("media_id", mediaID))
	return s.logged(ctx, "MediaRelationsAndRecommendations", mediaAttrs(mediaID))(
		s.api.MediaRelationsAndRecommendations(ctx, mediaID))
}

// MediaStats fetches rankings and distributions.
func (s *MediaService) MediaStats(ctx context.Context, mediaID int) (*graphql.Response, error) {
	s.logger.InfoContext(ctx, "fetching media stats", slog.Int("media_id", mediaID))
	return s.logged(ctx, "MediaStats", mediaAttrs(mediaID))(s.api.MediaStats(ctx, mediaID))
}

// MediaReviews pages through reviews.
func (s *MediaService) MediaReviews(ctx context.Context, mediaID int, page query.PageRequest) (*graphql.Response, error) {
	s.logger.InfoContext(ctx, "listing media reviews", slog.Int("media_id", mediaID), slog.Int("page", page.Page))
	return s.logged(ctx, "MediaReviews", mediaAttrs(mediaID))(s.api.MediaReviews(ctx, mediaID, page))
}

// MediaThreads pages through forum threads.
func (s *MediaService) MediaThreads(ctx context.Context, mediaID int, page query.PageRequest) (*graphql.Response, error) {
	s.logger.InfoContext(ctx, "listing media threads", slog.Int("media_id", mediaID), slog.Int("page", page.Page))
	return s.logged(ctx, "MediaThreads", mediaAttrs(mediaID))(s.api.MediaThreads(ctx, mediaID, page))
}

// UserCurrentAnimeList fetches a user's CURRENT anime list.
func (s *MediaService) UserCurrentAnimeList(ctx context.Context, userID int) (*graphql.Response, error) {
	s.logger.InfoContext(ctx, "fetching current anime list", slog.Int("user_id", userID))
	return s.logged(ctx, "UserCurrentAnimeList", []any{slog.Int("user_id", userID)})(
		s.api.UserCurrentAnimeList(ctx, userID))
}

// MediaOverview fetches the overview sections concurrently. Sections fail
// independently and are reported in MediaOverview.Errors.
func (s *MediaService) MediaOverview(ctx context.Context, mediaID int) (*ports.MediaOverview, error) {
	if mediaID <= 0 {
		return nil, fmt.Errorf("MediaOverview: media_id=%d: %w", mediaID, query.ErrInvalidID)
	}

	s.logger.InfoContext(ctx, "fetching media overview",
		slog.Int("media_id", mediaID),
		slog.Int("workers", s.overviewWorkers),
	)

	fetch := map[ports.OverviewPart]func(context.Context, int) (*graphql.Response, error){
		ports.OverviewDetails:         s.api.MediaDetails,
		ports.OverviewCharactersStaff: s.api.MediaCharactersAndStaff,
		ports.OverviewRelations:       s.api.MediaRelationsAndRecommendations,
		ports.OverviewStats:           s.api.MediaStats,
	}

	results := fanout.Run(ctx, s.overviewWorkers, ports.OverviewParts,
		func(ctx context.Context, part ports.OverviewPart) (*graphql.Response, error) {
			return fetch[part](ctx, mediaID)
		})

	overview := &ports.MediaOverview{
		MediaID: mediaID,
		Parts:   make(map[ports.OverviewPart]*graphql.Response, len(results)),
	}
	errs := make([]error, 0, len(results))
	for i, r := range results {
		part := ports.OverviewParts[i]
		if r.Err != nil {
			overview.Errors = append(overview.Errors, ports.OverviewError{Part: part, Err: r.Err})
			errs = append(errs, fmt.Errorf("%s: %w", part, r.Err))
			s.logger.WarnContext(ctx, "media overview part failed",
				slog.String("operation", "MediaOverview"),
				slog.Int("media_id", mediaID),
				slog.String("part", string(part)),
				slog.Any("error", r.Err),
			)
			continue
		}
		overview.Parts[part] = r.Value
	}

	if len(overview.Parts) == 0 {
		err := fmt.Errorf("media overview %d: %w", mediaID, errors.Join(errs...))
		s.logger.ErrorContext(ctx, "media overview failed",
			slog.String("operation", "MediaOverview"),
			slog.Int("media_id", mediaID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return overview, nil
}

// logged returns a pass-through that logs failures of op with the given
// attributes before handing the result back unchanged.
func (s *MediaService) logged(ctx context.Context, op string, attrs []any) func(*graphql.Response, error) (*graphql.Response, error) {
	return func(resp *graphql.Response, err error) (*graphql.Response, error) {
		if err != nil {
			args := append([]any{slog.String("operation", op)}, attrs...)
			args = append(args, slog.Any("error", err))
			s.logger.ErrorContext(ctx, "anilist operation failed", args...)
			return nil, err
		}
		if resp != nil && resp.HasErrors() {
			s.logger.WarnContext(ctx, "anilist operation returned graphql errors",
				slog.String("operation", op),
				slog.Int("graphql_errors", len(resp.Errors)),
			)
		}
		return resp, nil
	}
}

func mediaAttrs(mediaID int) []any {
	return []any{slog.Int("media_id", mediaID)}
}
