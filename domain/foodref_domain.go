package domain

var (
	MessageSuccessGetFoodRefs   = "food references fetched successfully"
	MessageSuccessSearchFoodRef = "food references searched successfully"
	MessageFailedGetFoodRefs    = "failed to fetch food references"
	MessageFailedSearchFoodRef  = "failed to search food references"
)

// SortNewest orders food reference listings by creation time, newest first.
// Any other value keeps the default alphabetical order.
const SortNewest = "newest"
