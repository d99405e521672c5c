package ports

import (
	"context"

	"github.com/jsamuelsen11/media-gateway/internal/adapters/clients/anilist/graphql"
	"github.com/jsamuelsen11/media-gateway/internal/adapters/clients/anilist/query"
)

// MediaService is the service port called by inbound adapters. It mirrors
// MediaAPI one to one and adds the multi-call views.
type MediaService interface {
	MediaAPI

	// CurrentSeason lists the broadcast season in progress right now.
	CurrentSeason(ctx context.Context, page query.PageRequest) (*graphql.Response, error)

	// MediaOverview fetches details, cast and staff, relations, and stats
	// of one media entry concurrently. Parts fail independently; a hard error
	// is returned only for an invalid identifier or when every part failed.
	MediaOverview(ctx context.Context, mediaID int) (*MediaOverview, error)
}

// OverviewPart names one section of a MediaOverview.
type OverviewPart string

// Overview sections in the order they are fetched.
const (
	OverviewDetails         OverviewPart = "details"
	OverviewCharactersStaff OverviewPart = "characters_staff"
	OverviewRelations       OverviewPart = "relations"
	OverviewStats           OverviewPart = "stats"
)

// OverviewParts lists every section of a MediaOverview.
var OverviewParts = []OverviewPart{
	OverviewDetails,
	OverviewCharactersStaff,
	OverviewRelations,
	OverviewStats,
}

// OverviewError records a section that could not be fetched.
type OverviewError struct {
	Part OverviewPart
	Err  error
}

// MediaOverview holds the sections fetched for one media entry. Parts
// contains only the sections that succeeded.
type MediaOverview struct {
	MediaID int
	Parts   map[OverviewPart]*graphql.Response
	Errors  []OverviewError
}
