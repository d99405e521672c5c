package media

// CountryOfOrigin is the ISO 3166-1 alpha-2 code of the country a media
// entry was produced in. Only the codes the catalogue filters on are listed.
type CountryOfOrigin string

const (
	CountryJapan      CountryOfOrigin = "JP"
	CountrySouthKorea CountryOfOrigin = "KR"
	CountryChina      CountryOfOrigin = "CN"
	CountryTaiwan     CountryOfOrigin = "TW"
)

// IsValid returns true if the country is one of the defined constants.
func (c CountryOfOrigin) IsValid() bool {
	switch c {
	case CountryJapan, CountrySouthKorea, CountryChina, CountryTaiwan:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (c CountryOfOrigin) String() string {
	return string(c)
}
