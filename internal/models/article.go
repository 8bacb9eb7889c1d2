package models

import (
	"time"
)

// Article represents an article in the system
type Article struct {
	ID            string     `json:"id" db:"id"`
	Title         string     `json:"title" db:"title"`
	Slug          string     `json:"slug" db:"slug"`
	Body          string     `json:"body" db:"body"`
	Summary       string     `json:"summary" db:"summary"`
	CategoryID    string     `json:"category_id,omitempty" db:"category_id"`
	AuthorID      string     `json:"author_id,omitempty" db:"author_id"`
	Status        string     `json:"status" db:"status"`
	Tags          []string   `json:"tags" db:"-"` // Stored as JSONB in DB
	FeaturedImage string     `json:"featured_image,omitempty" db:"featured_image"`
	IsBreaking    bool       `json:"is_breaking" db:"is_breaking"`
	Region        string     `json:"region,omitempty" db:"region"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	PublishedAt   *time.Time `json:"published_at,omitempty" db:"published_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// ValidArticleStatuses defines allowed article statuses
var ValidArticleStatuses = map[string]bool{
	"draft":     true,
	"published": true,
}

// CreateArticleRequest is the payload for creating an article
type CreateArticleRequest struct {
	Title         string   `json:"title" binding:"required"`
	Slug          string   `json:"slug" binding:"required"`
	Body          string   `json:"body"`
	Summary       string   `json:"summary"`
	CategoryID    string   `json:"category_id"`
	AuthorID      string   `json:"author_id"`
	Status        string   `json:"status"`
	Tags          []string `json:"tags"`
	FeaturedImage string   `json:"featured_image"`
	IsBreaking    bool     `json:"is_breaking"`
	Region        string   `json:"region"`
}

// UpdateArticleRequest is the payload for a partial article update.
// Nil fields are left unchanged.
type UpdateArticleRequest struct {
	Title         *string   `json:"title"`
	Slug          *string   `json:"slug"`
	Body          *string   `json:"body"`
	Summary       *string   `json:"summary"`
	CategoryID    *string   `json:"category_id"`
	Status        *string   `json:"status"`
	Tags          *[]string `json:"tags"`
	FeaturedImage *string   `json:"featured_image"`
	IsBreaking    *bool     `json:"is_breaking"`
	Region        *string   `json:"region"`
}

// ArticleFilter narrows article listings
type ArticleFilter struct {
	Status     string
	CategoryID string
	Breaking   *bool
	Page       int
	Limit      int
}
