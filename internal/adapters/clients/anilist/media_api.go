// Package anilist implements the MediaAPI client port on top of the query
// builders and the GraphQL transport.
package anilist

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/media-gateway/internal/adapters/clients/anilist/graphql"
	"github.com/jsamuelsen11/media-gateway/internal/adapters/clients/anilist/query"
	"github.com/jsamuelsen11/media-gateway/internal/domain/media"
	"github.com/jsamuelsen11/media-gateway/internal/platform/telemetry"
	"github.com/jsamuelsen11/media-gateway/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.MediaAPI      = (*MediaAPI)(nil)
	_ ports.HealthChecker = (*graphql.Client)(nil)
)

// Metric result labels for graphql.operation.total.
const (
	resultSuccess      = "success"
	resultGraphQLError = "graphql_error"
	resultRejected     = "rejected"
	resultError        = "error"
)

// Executor sends a built request. Satisfied by *graphql.Client.
type Executor interface {
	Execute(ctx context.Context, req *query.Request) (*graphql.Response, error)
}

// MediaAPI builds one request per call and executes it once.
type MediaAPI struct {
	transport Executor
	metrics   *telemetry.Metrics
	logger    *slog.Logger
}

// NewMediaAPI creates the adapter. A nil metrics disables operation metrics.
func NewMediaAPI(transport Executor, metrics *telemetry.Metrics, logger *slog.Logger) *MediaAPI {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &MediaAPI{transport: transport, metrics: metrics, logger: logger}
}

func (a *MediaAPI) SearchMedia(ctx context.Context, p query.SearchMediaParams) (*graphql.Response, error) {
	return a.run(ctx, query.OpSearchMedia, func() (*query.Request, error) { return query.SearchMedia(p) })
}

func (a *MediaAPI) GenreTagCollection(ctx context.Context) (*graphql.Response, error) {
	return a.run(ctx, query.OpGenreTagCollection, func() (*query.Request, error) { return query.GenreTagCollection(), nil })
}

func (a *MediaAPI) AiringAnimes(ctx context.Context, p query.AiringAnimesParams) (*graphql.Response, error) {
	return a.run(ctx, query.OpAiringAnimes, func() (*query.Request, error) { return query.AiringAnimes(p) })
}

func (a *MediaAPI) AiringOnMyList(ctx context.Context, page query.PageRequest) (*graphql.Response, error) {
	return a.run(ctx, query.OpAiringOnMyList, func() (*query.Request, error) { return query.AiringOnMyList(page) })
}

func (a *MediaAPI) SeasonalAnime(ctx context.Context, season media.AnimeSeason, page query.PageRequest) (*graphql.Response, error) {
	return a.run(ctx, query.OpSeasonalAnime, func() (*query.Request, error) { return query.SeasonalAnime(season, page) })
}

func (a *MediaAPI) MediaSorted(ctx context.Context, p query.MediaSortedParams) (*graphql.Response, error) {
	return a.run(ctx, query.OpMediaSorted, func() (*query.Request, error) { return query.MediaSorted(p) })
}

func (a *MediaAPI) MediaChart(ctx context.Context, p query.MediaChartParams) (*graphql.Response, error) {
	return a.run(ctx, query.OpMediaChart, func() (*query.Request, error) { return query.MediaChart(p) })
}

func (a *MediaAPI) MediaDetails(ctx context.Context, mediaID int) (*graphql.Response, error) {
	return a.run(ctx, query.OpMediaDetails, func() (*query.Request, error) { return query.MediaDetails(mediaID) })
}

func (a *MediaAPI) MediaCharactersAndStaff(ctx context.Context, mediaID int) (*graphql.Response, error) {
	return a.run(ctx, query.OpMediaCharactersAndStaff, func() (*query.Request, error) {
		return query.MediaCharactersAndStaff(mediaID)
	})
}

func (a *MediaAPI) MediaRelationsAndRecommendations(ctx context.Context, mediaID int) (*graphql.Response, error) {
	return a.run(ctx, query.OpMediaRelationsAndRecommendations, func() (*query.Request, error) {
		return query.MediaRelationsAndRecommendations(mediaID)
	})
}

func (a *MediaAPI) MediaStats(ctx context.Context, mediaID int) (*graphql.Response, error) {
	return a.run(ctx, query.OpMediaStats, func() (*query.Request, error) { return query.MediaStats(mediaID) })
}

func (a *MediaAPI) MediaReviews(ctx context.Context, mediaID int, page query.PageRequest) (*graphql.Response, error) {
	return a.run(ctx, query.OpMediaReviews, func() (*query.Request, error) { return query.MediaReviews(mediaID, page) })
}

func (a *MediaAPI) MediaThreads(ctx context.Context, mediaID int, page query.PageRequest) (*graphql.Response, error) {
	return a.run(ctx, query.OpMediaThreads, func() (*query.Request, error) { return query.MediaThreads(mediaID, page) })
}

func (a *MediaAPI) UserCurrentAnimeList(ctx context.Context, userID int) (*graphql.Response, error) {
	return a.run(ctx, query.OpUserCurrentAnimeList, func() (*query.Request, error) {
		return query.UserCurrentAnimeList(userID)
	})
}

// run builds the request and executes it. Rejected builds never reach the
// transport but are still counted.
func (a *MediaAPI) run(ctx context.Context, op query.Operation, build func() (*query.Request, error)) (*graphql.Response, error) {
	start := time.Now()

	req, err := build()
	if err != nil {
		a.logger.DebugContext(ctx, "request rejected before send",
			slog.String("operation", op.String()),
			slog.Any("error", err),
		)
		a.record(ctx, op, start, resultRejected)
		return nil, err
	}

	resp, err := a.transport.Execute(ctx, req)
	a.record(ctx, op, start, outcome(resp, err))
	return resp, err
}

func outcome(resp *graphql.Response, err error) string {
	switch {
	case err != nil:
		return resultError
	case resp.HasErrors():
		return resultGraphQLError
	default:
		return resultSuccess
	}
}

func (a *MediaAPI) record(ctx context.Context, op query.Operation, start time.Time, result string) {
	if a.metrics == nil {
		return
	}

	attrs := metric.WithAttributes(
		telemetry.AttrOperation.String(op.String()),
		telemetry.AttrResult.String(result),
	)
	a.metrics.GraphQLOperationTotal.Add(ctx, 1, attrs)
	a.metrics.GraphQLOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
}
