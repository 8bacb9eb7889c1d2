package models

import (
	"time"
)

// Subscriber represents a newsletter subscriber
type Subscriber struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Name      string    `json:"name,omitempty" db:"name"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// SubscriberStatusActive is the status of a live subscription
const SubscriberStatusActive = "active"

// SubscribeRequest is the payload for the public subscribe endpoint
type SubscribeRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name"`
}
