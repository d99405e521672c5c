package dto

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/media-gateway/internal/adapters/clients/anilist/query"
	"github.com/jsamuelsen11/media-gateway/internal/domain"
	"github.com/jsamuelsen11/media-gateway/internal/domain/media"
)

const (
	msgMustBeInt  = "must be a valid integer"
	msgMustBeBool = "must be true or false"
)

// PageLimits bound the per_page parameter of every paginated listing.
type PageLimits struct {
	Default int
	Max     int
}

// DefaultPageLimits mirror the AniList page size cap.
var DefaultPageLimits = PageLimits{Default: 25, Max: 50}

// enum is satisfied by the media enumerations. Values are matched
// case-insensitively against their upper-case wire names.
type enum interface {
	~string
	IsValid() bool
}

// queryReader reads typed values from a query string and collects every
// malformed one under its "query." location, so a single reply reports all
// of them.
type queryReader struct {
	values url.Values
	fields map[string]string
}

func newQueryReader(values url.Values) *queryReader {
	return &queryReader{values: values, fields: make(map[string]string)}
}

func (q *queryReader) fail(key, msg string) {
	q.fields["query."+key] = msg
}

func (q *queryReader) err() error {
	if len(q.fields) > 0 {
		return &domain.ValidationError{Fields: q.fields}
	}
	return nil
}

func (q *queryReader) str(key string) string {
	return q.values.Get(key)
}

// list accepts both repeated keys and comma separated values. Blank items
// are dropped.
func (q *queryReader) list(key string) []string {
	var out []string
	for _, raw := range q.values[key] {
		for item := range strings.SplitSeq(raw, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}

func (q *queryReader) intPtr(key string) *int {
	raw := strings.TrimSpace(q.str(key))
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		q.fail(key, msgMustBeInt)
		return nil
	}
	return &n
}

func (q *queryReader) int64Ptr(key string) *int64 {
	raw := strings.TrimSpace(q.str(key))
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		q.fail(key, msgMustBeInt)
		return nil
	}
	return &n
}

func (q *queryReader) boolPtr(key string) *bool {
	raw := strings.TrimSpace(q.str(key))
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		q.fail(key, msgMustBeBool)
		return nil
	}
	return &b
}

// page reads page and per_page, applying defaults when they are absent.
func (q *queryReader) page(limits PageLimits) query.PageRequest {
	p := query.PageRequest{Page: 1, PerPage: limits.Default}

	if n := q.intPtr("page"); n != nil {
		if *n < 1 {
			q.fail("page", domain.MsgMustBePos)
		}
		p.Page = *n
	}
	if n := q.intPtr("per_page"); n != nil {
		if *n < 1 || *n > limits.Max {
			q.fail("per_page", fmt.Sprintf("must be between 1 and %d", limits.Max))
		}
		p.PerPage = *n
	}
	return p
}

func enumValue[E enum](q *queryReader, key string) *E {
	raw := strings.TrimSpace(q.str(key))
	if raw == "" {
		return nil
	}
	v := E(strings.ToUpper(raw))
	if !v.IsValid() {
		q.fail(key, fmt.Sprintf("%s: %q", domain.MsgInvalidEnum, raw))
		return nil
	}
	return &v
}

func enumList[E enum](q *queryReader, key string) []E {
	items := q.list(key)
	if len(items) == 0 {
		return nil
	}
	out := make([]E, 0, len(items))
	for _, item := range items {
		v := E(strings.ToUpper(item))
		if !v.IsValid() {
			q.fail(key, fmt.Sprintf("%s: %q", domain.MsgInvalidEnum, item))
			continue
		}
		out = append(out, v)
	}
	return out
}

func requiredEnum[E enum](q *queryReader, key string) E {
	if strings.TrimSpace(q.str(key)) == "" {
		q.fail(key, domain.MsgRequired)
		var zero E
		return zero
	}
	if v := enumValue[E](q, key); v != nil {
		return *v
	}
	var zero E
	return zero
}

// orDefault returns sort, or def when the caller gave no ordering. AniList
// needs at least one key to order a page.
func orDefault[S ~[]E, E any](sort S, def ...E) S {
	if len(sort) == 0 {
		return S(def)
	}
	return sort
}

// ParsePage reads page and per_page.
func ParsePage(values url.Values, limits PageLimits) (query.PageRequest, error) {
	q := newQueryReader(values)
	p := q.page(limits)
	return p, q.err()
}

// ParseSearchMedia reads the catalogue search filters. type is required.
// List filters accept repeated keys or comma separated values. Without a
// sort, results are ordered by SEARCH_MATCH when query is set and by
// POPULARITY_DESC otherwise.
func ParseSearchMedia(values url.Values, limits PageLimits) (query.SearchMediaParams, error) {
	q := newQueryReader(values)
	p := query.SearchMediaParams{
		PageRequest: q.page(limits),
		Type:        requiredEnum[media.Type](q, "type"),
		Query:       q.str("query"),
		Sort:        enumList[media.Sort](q, "sort"),
		GenreIn:     q.list("genre_in"),
		GenreNotIn:  q.list("genre_not_in"),
		TagIn:       q.list("tag_in"),
		TagNotIn:    q.list("tag_not_in"),
		FormatIn:    enumList[media.Format](q, "format_in"),
		StatusIn:    enumList[media.Status](q, "status_in"),
		StartYear:   q.intPtr("start_year"),
		EndYear:     q.intPtr("end_year"),
		OnList:      q.boolPtr("on_list"),
		IsLicensed:  q.boolPtr("is_licensed"),
		IsAdult:     q.boolPtr("is_adult"),
		Country:     enumValue[media.CountryOfOrigin](q, "country"),
	}
	if strings.TrimSpace(p.Query) != "" {
		p.Sort = orDefault(p.Sort, media.SortSearchMatch)
	} else {
		p.Sort = orDefault(p.Sort, media.SortPopularityDesc)
	}
	return p, q.err()
}

// ParseAiringAnimes reads an airing window given in unix seconds, ordered by
// TIME unless sort is given.
func ParseAiringAnimes(values url.Values, limits PageLimits) (query.AiringAnimesParams, error) {
	q := newQueryReader(values)
	p := query.AiringAnimesParams{
		PageRequest:     q.page(limits),
		AiringAtGreater: q.int64Ptr("airing_at_greater"),
		AiringAtLesser:  q.int64Ptr("airing_at_lesser"),
		Sort:            enumList[media.AiringSort](q, "sort"),
	}
	p.Sort = orDefault(p.Sort, media.AiringSortTime)
	return p, q.err()
}

// ParseMediaSorted reads a typed, ordered listing. type is required; sort
// defaults to POPULARITY_DESC.
func ParseMediaSorted(values url.Values, limits PageLimits) (query.MediaSortedParams, error) {
	q := newQueryReader(values)
	p := query.MediaSortedParams{
		PageRequest: q.page(limits),
		Type:        requiredEnum[media.Type](q, "type"),
		Sort:        enumList[media.Sort](q, "sort"),
	}
	p.Sort = orDefault(p.Sort, media.SortPopularityDesc)
	return p, q.err()
}

// ParseMediaChart reads a ranked chart listing. type is required; sort
// defaults to SCORE_DESC.
func ParseMediaChart(values url.Values, limits PageLimits) (query.MediaChartParams, error) {
	q := newQueryReader(values)
	p := query.MediaChartParams{
		PageRequest: q.page(limits),
		Type:        requiredEnum[media.Type](q, "type"),
		Sort:        enumList[media.Sort](q, "sort"),
		Status:      enumValue[media.Status](q, "status"),
		Format:      enumValue[media.Format](q, "format"),
	}
	p.Sort = orDefault(p.Sort, media.SortScoreDesc)
	return p, q.err()
}

// ParseID reads a positive identifier from a path segment. name is the
// path parameter, reported as "path.<name>".
func ParseID(raw, name string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &domain.ValidationError{Fields: map[string]string{"path." + name: msgMustBeInt}}
	}
	if id <= 0 {
		return 0, &domain.ValidationError{Fields: map[string]string{"path." + name: domain.MsgMustBePos}}
	}
	return id, nil
}

// ParseSeason reads a season and year from path segments. The season name
// is case-insensitive.
func ParseSeason(rawYear, rawSeason string) (media.AnimeSeason, error) {
	year, err := strconv.Atoi(strings.TrimSpace(rawYear))
	if err != nil {
		return media.AnimeSeason{}, &domain.ValidationError{Fields: map[string]string{"path.year": msgMustBeInt}}
	}

	season := media.AnimeSeason{
		Year:   year,
		Season: media.Season(strings.ToUpper(strings.TrimSpace(rawSeason))),
	}
	if err := season.Validate(); err != nil {
		return media.AnimeSeason{}, prefixFields(err, "path.")
	}
	return season, nil
}

// prefixFields relocates the fields of a *domain.ValidationError under
// prefix. Other errors are returned unchanged.
func prefixFields(err error, prefix string) error {
	verr, ok := err.(*domain.ValidationError)
	if !ok {
		return err
	}
	fields := make(map[string]string, len(verr.Fields))
	for k, v := range verr.Fields {
		fields[prefix+k] = v
	}
	return &domain.ValidationError{Fields: fields}
}
