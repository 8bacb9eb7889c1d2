package models

// SearchResults aggregates one query's matches across all collections.
// Slices are always non-nil so empty results serialize as [].
type SearchResults struct {
	Articles   []ArticleHit  `json:"articles"`
	Videos     []VideoHit    `json:"videos"`
	Categories []CategoryHit `json:"categories"`
}

// ArticleHit is a lightweight article projection for search results
type ArticleHit struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Excerpt string `json:"excerpt,omitempty"`
}

// VideoHit is a lightweight video projection for search results
type VideoHit struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Excerpt string `json:"excerpt,omitempty"`
}

// CategoryHit is a lightweight category projection for search results
type CategoryHit struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}
