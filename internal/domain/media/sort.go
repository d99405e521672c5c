package media

// Sort is a media ordering key. Keys ending in _DESC sort descending.
type Sort string

const (
	SortID               Sort = "ID"
	SortIDDesc           Sort = "ID_DESC"
	SortTitleRomaji      Sort = "TITLE_ROMAJI"
	SortTitleRomajiDesc  Sort = "TITLE_ROMAJI_DESC"
	SortTitleEnglish     Sort = "TITLE_ENGLISH"
	SortTitleEnglishDesc Sort = "TITLE_ENGLISH_DESC"
	SortTitleNative      Sort = "TITLE_NATIVE"
	SortTitleNativeDesc  Sort = "TITLE_NATIVE_DESC"
	SortStartDate        Sort = "START_DATE"
	SortStartDateDesc    Sort = "START_DATE_DESC"
	SortEndDate          Sort = "END_DATE"
	SortEndDateDesc      Sort = "END_DATE_DESC"
	SortScore            Sort = "SCORE"
	SortScoreDesc        Sort = "SCORE_DESC"
	SortPopularity       Sort = "POPULARITY"
	SortPopularityDesc   Sort = "POPULARITY_DESC"
	SortTrending         Sort = "TRENDING"
	SortTrendingDesc     Sort = "TRENDING_DESC"
	SortEpisodes         Sort = "EPISODES"
	SortEpisodesDesc     Sort = "EPISODES_DESC"
	SortChapters         Sort = "CHAPTERS"
	SortChaptersDesc     Sort = "CHAPTERS_DESC"
	SortUpdatedAt        Sort = "UPDATED_AT"
	SortUpdatedAtDesc    Sort = "UPDATED_AT_DESC"
	SortFavourites       Sort = "FAVOURITES"
	SortFavouritesDesc   Sort = "FAVOURITES_DESC"
	SortSearchMatch      Sort = "SEARCH_MATCH"
)

var validSorts = map[Sort]struct{}{
	SortID: {}, SortIDDesc: {},
	SortTitleRomaji: {}, SortTitleRomajiDesc: {},
	SortTitleEnglish: {}, SortTitleEnglishDesc: {},
	SortTitleNative: {}, SortTitleNativeDesc: {},
	SortStartDate: {}, SortStartDateDesc: {},
	SortEndDate: {}, SortEndDateDesc: {},
	SortScore: {}, SortScoreDesc: {},
	SortPopularity: {}, SortPopularityDesc: {},
	SortTrending: {}, SortTrendingDesc: {},
	SortEpisodes: {}, SortEpisodesDesc: {},
	SortChapters: {}, SortChaptersDesc: {},
	SortUpdatedAt: {}, SortUpdatedAtDesc: {},
	SortFavourites: {}, SortFavouritesDesc: {},
	SortSearchMatch: {},
}

// IsValid returns true if the sort key is one of the defined constants.
func (s Sort) IsValid() bool {
	_, ok := validSorts[s]
	return ok
}

// String implements fmt.Stringer.
func (s Sort) String() string {
	return string(s)
}

// AiringSort orders airing schedule entries.
type AiringSort string

const (
	AiringSortID          AiringSort = "ID"
	AiringSortIDDesc      AiringSort = "ID_DESC"
	AiringSortMediaID     AiringSort = "MEDIA_ID"
	AiringSortMediaIDDesc AiringSort = "MEDIA_ID_DESC"
	AiringSortTime        AiringSort = "TIME"
	AiringSortTimeDesc    AiringSort = "TIME_DESC"
	AiringSortEpisode     AiringSort = "EPISODE"
	AiringSortEpisodeDesc AiringSort = "EPISODE_DESC"
)

// IsValid returns true if the sort key is one of the defined constants.
func (s AiringSort) IsValid() bool {
	switch s {
	case AiringSortID, AiringSortIDDesc, AiringSortMediaID, AiringSortMediaIDDesc,
		AiringSortTime, AiringSortTimeDesc, AiringSortEpisode, AiringSortEpisodeDesc:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s AiringSort) String() string {
	return string(s)
}

// ThreadSort orders forum threads. Only the keys the gateway emits are listed.
type ThreadSort string

const (
	ThreadSortCreatedAt     ThreadSort = "CREATED_AT"
	ThreadSortCreatedAtDesc ThreadSort = "CREATED_AT_DESC"
	ThreadSortRepliedAtDesc ThreadSort = "REPLIED_AT_DESC"
)

// String implements fmt.Stringer.
func (s ThreadSort) String() string {
	return string(s)
}
