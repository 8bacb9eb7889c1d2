package models

// DashboardStats is the aggregate snapshot shown on the dashboard.
// TotalViews and TotalLikes are recomputed from the per-visitor counting
// tables on every call, never from a precomputed counter.
type DashboardStats struct {
	TotalArticles    int `json:"totalArticles"`
	TotalDrafts      int `json:"totalDrafts"`
	TotalPublished   int `json:"totalPublished"`
	TotalBreaking    int `json:"totalBreaking"`
	TotalViews       int `json:"totalViews"`
	TotalLikes       int `json:"totalLikes"`
	TotalVideos      int `json:"totalVideos"`
	TotalCategories  int `json:"totalCategories"`
	TotalUsers       int `json:"totalUsers"`
	TotalSubscribers int `json:"totalSubscribers"`
}
