package models

import (
	"time"
)

// Video represents a video in the system
type Video struct {
	ID              string    `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Slug            string    `json:"slug" db:"slug"`
	Description     string    `json:"description" db:"description"`
	CategoryID      string    `json:"category_id,omitempty" db:"category_id"`
	UploaderID      string    `json:"uploader_id,omitempty" db:"uploader_id"`
	DurationSeconds int       `json:"duration_seconds" db:"duration_seconds"`
	Status          string    `json:"status" db:"status"`
	Tags            []string  `json:"tags" db:"-"` // Stored as JSONB in DB
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// ValidVideoStatuses defines allowed video statuses
var ValidVideoStatuses = map[string]bool{
	"draft":     true,
	"published": true,
	"archived":  true,
}

// CreateVideoRequest is the payload for creating a video
type CreateVideoRequest struct {
	Title           string   `json:"title" binding:"required"`
	Slug            string   `json:"slug" binding:"required"`
	Description     string   `json:"description"`
	CategoryID      string   `json:"category_id"`
	UploaderID      string   `json:"uploader_id"`
	DurationSeconds int      `json:"duration_seconds"`
	Status          string   `json:"status"`
	Tags            []string `json:"tags"`
}

// UpdateVideoRequest is the payload for a partial video update
type UpdateVideoRequest struct {
	Title           *string   `json:"title"`
	Slug            *string   `json:"slug"`
	Description     *string   `json:"description"`
	CategoryID      *string   `json:"category_id"`
	DurationSeconds *int      `json:"duration_seconds"`
	Status          *string   `json:"status"`
	Tags            *[]string `json:"tags"`
}

// VideoFilter narrows video listings
type VideoFilter struct {
	Status string
	Page   int
	Limit  int
}
