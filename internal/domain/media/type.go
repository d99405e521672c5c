// Package media holds the enumerations and value types callers use to
// describe media queries: media type, sort keys, formats, release statuses,
// seasons, and country of origin. String values match the downstream
// GraphQL schema enum names exactly so they can be sent on the wire as-is.
package media

// Type distinguishes anime from manga.
type Type string

const (
	TypeAnime Type = "ANIME"
	TypeManga Type = "MANGA"
)

// IsValid returns true if the type is one of the defined constants.
func (t Type) IsValid() bool {
	switch t {
	case TypeAnime, TypeManga:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}
