package media

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/media-gateway/internal/domain"
)

// Season is the quarter of the year a media entry premiered in.
type Season string

const (
	SeasonWinter Season = "WINTER"
	SeasonSpring Season = "SPRING"
	SeasonSummer Season = "SUMMER"
	SeasonFall   Season = "FALL"
)

// Year bounds accepted for seasonal listings.
const (
	MinSeasonYear = 1940
	MaxSeasonYear = 2099
)

// IsValid returns true if the season is one of the defined constants.
func (s Season) IsValid() bool {
	switch s {
	case SeasonWinter, SeasonSpring, SeasonSummer, SeasonFall:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Season) String() string {
	return string(s)
}

// AnimeSeason identifies a broadcast season, e.g. FALL 2016.
type AnimeSeason struct {
	Year   int
	Season Season
}

// Validate checks that the season is a known constant and the year is within
// [MinSeasonYear, MaxSeasonYear].
func (a AnimeSeason) Validate() error {
	fields := make(map[string]string)

	if !a.Season.IsValid() {
		fields["season"] = fmt.Sprintf("invalid: %q", a.Season)
	}
	if a.Year < MinSeasonYear || a.Year > MaxSeasonYear {
		fields["year"] = fmt.Sprintf("must be %d-%d, got %d", MinSeasonYear, MaxSeasonYear, a.Year)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// String implements fmt.Stringer.
func (a AnimeSeason) String() string {
	return fmt.Sprintf("%s %d", a.Season, a.Year)
}

// SeasonOf returns the broadcast season containing t. December belongs to the
// winter season of the following year.
func SeasonOf(t time.Time) AnimeSeason {
	year := t.Year()
	switch t.Month() {
	case time.December:
		return AnimeSeason{Year: year + 1, Season: SeasonWinter}
	case time.January, time.February:
		return AnimeSeason{Year: year, Season: SeasonWinter}
	case time.March, time.April, time.May:
		return AnimeSeason{Year: year, Season: SeasonSpring}
	case time.June, time.July, time.August:
		return AnimeSeason{Year: year, Season: SeasonSummer}
	default:
		return AnimeSeason{Year: year, Season: SeasonFall}
	}
}
