package models

import (
	"time"
)

// User represents a dashboard user
type User struct {
	ID          string            `json:"id" db:"id"`
	Name        string            `json:"name" db:"name"`
	Email       string            `json:"email" db:"email"`
	Role        string            `json:"role" db:"role"`
	Active      bool              `json:"active" db:"active"`
	Bio         string            `json:"bio,omitempty" db:"bio"`
	SocialLinks map[string]string `json:"social_links,omitempty" db:"-"` // Stored as JSONB in DB
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" db:"updated_at"`
}

// ValidRoles defines allowed user roles
var ValidRoles = map[string]bool{
	"admin":  true,
	"author": true,
	"editor": true,
}

// CreateUserRequest is the payload for creating a user
type CreateUserRequest struct {
	Name        string            `json:"name" binding:"required"`
	Email       string            `json:"email" binding:"required"`
	Role        string            `json:"role" binding:"required"`
	Bio         string            `json:"bio"`
	SocialLinks map[string]string `json:"social_links"`
}

// UpdateUserRequest is the payload for a partial user update
type UpdateUserRequest struct {
	Name        *string            `json:"name"`
	Role        *string            `json:"role"`
	Active      *bool              `json:"active"`
	Bio         *string            `json:"bio"`
	SocialLinks *map[string]string `json:"social_links"`
}
