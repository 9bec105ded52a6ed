package schema

// APIResponse wraps all CurseForge API responses
type APIResponse[T any] struct {
	Data T `json:"data"`
}

// PaginatedResponse wraps paginated CurseForge API responses
type PaginatedResponse[T any] struct {
	Data       T          `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Pagination describes the page a list response covers.
type Pagination struct {
	// Index is the zero based index of the first item in the page.
	Index int `json:"index"`
	// PageSize is the requested number of items.
	PageSize int `json:"pageSize"`
	// ResultCount is the number of items actually included.
	ResultCount int `json:"resultCount"`
	TotalCount  int `json:"totalCount"`
}

// GetFeaturedModsResponse is returned unwrapped by the featured mods endpoint.
type GetFeaturedModsResponse struct {
	Featured        []Mod `json:"featured"`
	Popular         []Mod `json:"popular"`
	RecentlyUpdated []Mod `json:"recentlyUpdated"`
}
