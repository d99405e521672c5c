package query

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/jsamuelsen11/media-gateway/internal/domain"
	"github.com/jsamuelsen11/media-gateway/internal/domain/media"
)

// Builder turns JSON-encoded parameters into a request. An empty or null
// params document is treated as "{}".
type Builder func(params json.RawMessage) (*Request, error)

// MediaIDParams carry the identifier of a single media entry.
type MediaIDParams struct {
	MediaID int `json:"media_id"`
}

// MediaPageParams carry a media identifier plus pagination.
type MediaPageParams struct {
	PageRequest

	MediaID int `json:"media_id"`
}

// SeasonParams select a broadcast season and page.
type SeasonParams struct {
	PageRequest

	Year   int          `json:"year"`
	Season media.Season `json:"season"`
}

// UserIDParams carry the identifier of a user.
type UserIDParams struct {
	UserID int `json:"user_id"`
}

// registry maps every operation to its builder. Dynamic callers (the CLI)
// dispatch through it; typed callers use the builder functions directly.
var registry = map[Operation]Builder{
	OpSearchMedia:  decodeInto(SearchMedia),
	OpAiringAnimes: decodeInto(AiringAnimes),
	OpMediaSorted:  decodeInto(MediaSorted),
	OpMediaChart:   decodeInto(MediaChart),
	OpGenreTagCollection: func(json.RawMessage) (*Request, error) {
		return GenreTagCollection(), nil
	},
	OpAiringOnMyList: decodeInto(AiringOnMyList),
	OpSeasonalAnime: decodeInto(func(p SeasonParams) (*Request, error) {
		return SeasonalAnime(media.AnimeSeason{Year: p.Year, Season: p.Season}, p.PageRequest)
	}),
	OpMediaDetails:                     decodeInto(withMediaID(MediaDetails)),
	OpMediaCharactersAndStaff:          decodeInto(withMediaID(MediaCharactersAndStaff)),
	OpMediaRelationsAndRecommendations: decodeInto(withMediaID(MediaRelationsAndRecommendations)),
	OpMediaStats:                       decodeInto(withMediaID(MediaStats)),
	OpMediaReviews: decodeInto(func(p MediaPageParams) (*Request, error) {
		return MediaReviews(p.MediaID, p.PageRequest)
	}),
	OpMediaThreads: decodeInto(func(p MediaPageParams) (*Request, error) {
		return MediaThreads(p.MediaID, p.PageRequest)
	}),
	OpUserCurrentAnimeList: decodeInto(func(p UserIDParams) (*Request, error) {
		return UserCurrentAnimeList(p.UserID)
	}),
}

// Build looks up op in the registry and builds the request from params.
func Build(op Operation, params json.RawMessage) (*Request, error) {
	b, ok := registry[op]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
	return b(params)
}

// Operations returns every registered operation name, sorted.
func Operations() []Operation {
	ops := make([]Operation, 0, len(registry))
	for op := range registry {
		ops = append(ops, op)
	}
	slices.Sort(ops)
	return ops
}

func withMediaID(fn func(int) (*Request, error)) func(MediaIDParams) (*Request, error) {
	return func(p MediaIDParams) (*Request, error) {
		return fn(p.MediaID)
	}
}

// decodeInto adapts a typed builder to a Builder. Unknown JSON fields are
// rejected so a misspelled filter is not silently dropped.
func decodeInto[P any](fn func(P) (*Request, error)) Builder {
	return func(raw json.RawMessage) (*Request, error) {
		var p P
		raw = bytes.TrimSpace(raw)
		if len(raw) > 0 && !bytes.Equal(raw, []byte("null")) {
			dec := json.NewDecoder(bytes.NewReader(raw))
			dec.DisallowUnknownFields()
			if err := dec.Decode(&p); err != nil {
				return nil, &domain.ValidationError{
					Fields: map[string]string{"params": err.Error()},
				}
			}
		}
		return fn(p)
	}
}
