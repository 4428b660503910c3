package types

// ------------------------------
// Request Types
// ------------------------------

// SearchOptions configures a single QueryFiles call.
type SearchOptions struct {
	// Count bounds the number of results returned per call. The upstream
	// API caps batch sizes (100 for detail lookups); the cap is not
	// enforced locally.
	Count uint32
	// AppID filters by game; it is sent as both the app id and the
	// creator app id.
	AppID uint32
	// Cursor continues a previous search. "*" is sent when empty.
	Cursor string
	// RequiredTags restricts results to items carrying these tags.
	RequiredTags *RequiredTags
	// ExcludedTags drops items carrying any of these tags.
	ExcludedTags []string
}

// RequiredTags lists tags a search result must carry. MatchAll requires
// every tag to be present; otherwise one match suffices.
type RequiredTags struct {
	Tags     []string
	MatchAll bool
}
