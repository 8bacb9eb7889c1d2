package models

// Stats actions accepted by the tracker
const (
	ActionView = "view"
	ActionLike = "like"
)

// VisitorAnonymous is the fallback visitor identifier when neither a user id
// nor a network address is available.
const VisitorAnonymous = "anonymous"

// StatsEventRequest is the payload for recording a view/like event
type StatsEventRequest struct {
	Action string `json:"action" binding:"required"`
	UserID string `json:"userId"`
}

// StatsEventResult reports the counter state after an event was processed
type StatsEventResult struct {
	Views   int    `json:"views,omitempty"`
	Likes   int    `json:"likes,omitempty"`
	Message string `json:"message"`
}

// ArticleStats is the read-only stats projection for an article
type ArticleStats struct {
	ArticleID string `json:"articleId"`
	Title     string `json:"title"`
	Views     int    `json:"views"`
	Likes     int    `json:"likes"`
}

// VideoStats is the read-only stats projection for a video
type VideoStats struct {
	VideoID string `json:"videoId"`
	Title   string `json:"title"`
	Views   int    `json:"views"`
}
