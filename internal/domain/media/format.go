package media

// Format is the release format of a media entry.
type Format string

const (
	FormatTV      Format = "TV"
	FormatTVShort Format = "TV_SHORT"
	FormatMovie   Format = "MOVIE"
	FormatSpecial Format = "SPECIAL"
	FormatOVA     Format = "OVA"
	FormatONA     Format = "ONA"
	FormatMusic   Format = "MUSIC"
	FormatManga   Format = "MANGA"
	FormatNovel   Format = "NOVEL"
	FormatOneShot Format = "ONE_SHOT"
)

// IsValid returns true if the format is one of the defined constants.
func (f Format) IsValid() bool {
	switch f {
	case FormatTV, FormatTVShort, FormatMovie, FormatSpecial, FormatOVA,
		FormatONA, FormatMusic, FormatManga, FormatNovel, FormatOneShot:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (f Format) String() string {
	return string(f)
}
