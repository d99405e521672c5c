package query

// Operation names a GraphQL operation. The value is sent as operationName
// and must match the operation declared in the document.
type Operation string

const (
	OpSearchMedia                      Operation = "SearchMedia"
	OpGenreTagCollection               Operation = "GenreTagCollection"
	OpAiringAnimes                     Operation = "AiringAnimes"
	OpAiringOnMyList                   Operation = "AiringOnMyList"
	OpSeasonalAnime                    Operation = "SeasonalAnime"
	OpMediaSorted                      Operation = "MediaSorted"
	OpMediaDetails                     Operation = "MediaDetails"
	OpMediaCharactersAndStaff          Operation = "MediaCharactersAndStaff"
	OpMediaRelationsAndRecommendations Operation = "MediaRelationsAndRecommendations"
	OpMediaStats                       Operation = "MediaStats"
	OpMediaReviews                     Operation = "MediaReviews"
	OpMediaThreads                     Operation = "MediaThreads"
	OpMediaChart                       Operation = "MediaChart"
	OpUserCurrentAnimeList             Operation = "UserCurrentAnimeList"
)

// String implements fmt.Stringer.
func (o Operation) String() string {
	return string(o)
}
