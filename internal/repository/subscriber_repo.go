package repository

import (
	"context"

	"github.com/news-cms-api/internal/database"
	"github.com/news-cms-api/internal/models"
)

// subscriberRepo is the concrete implementation of SubscriberRepository
type subscriberRepo struct {
	db *database.DB
}

// NewSubscriberRepo creates a new subscriber repository
func NewSubscriberRepo(db *database.DB) SubscriberRepository {
	return &subscriberRepo{db: db}
}

// Create inserts a new subscriber
func (r *subscriberRepo) Create(ctx context.Context, sub *models.Subscriber) error {
	query := `
		INSERT INTO subscribers (id, email, name, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		sub.ID, sub.Email, sub.Name, sub.Status, sub.CreatedAt,
	)
	return err
}

// EmailExists checks if a subscriber with the given email exists
func (r *subscriberRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM subscribers WHERE email = $1)", email).Scan(&exists)
	return exists, err
}

// List retrieves all subscribers
func (r *subscriberRepo) List(ctx context.Context) ([]*models.Subscriber, error) {
	query := `SELECT id, email, name, status, created_at FROM subscribers ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*models.Subscriber
	for rows.Next() {
		var sub models.Subscriber
		err := rows.Scan(&sub.ID, &sub.Email, &sub.Name, &sub.Status, &sub.CreatedAt)
		if err != nil {
			return nil, err
		}
		subs = append(subs, &sub)
	}
	return subs, rows.Err()
}

// CountByStatus returns the number of subscribers with the given status
func (r *subscriberRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM subscribers WHERE status = $1", status).Scan(&count)
	return count, err
}
