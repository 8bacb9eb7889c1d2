package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/news-cms-api/internal/database"
	"github.com/news-cms-api/internal/models"
)

// userRepo is the concrete implementation of UserRepository
type userRepo struct {
	db *database.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *database.DB) UserRepository {
	return &userRepo{db: db}
}

// Create inserts a new user
func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	linksJSON, _ := json.Marshal(user.SocialLinks)
	if user.SocialLinks == nil {
		linksJSON = []byte("{}")
	}

	query := `
		INSERT INTO users (id, name, email, role, active, bio, social_links, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Email, user.Role, user.Active,
		user.Bio, linksJSON, user.CreatedAt, user.UpdatedAt,
	)
	return err
}

// Update writes back a full user row
func (r *userRepo) Update(ctx context.Context, user *models.User) error {
	linksJSON, _ := json.Marshal(user.SocialLinks)
	if user.SocialLinks == nil {
		linksJSON = []byte("{}")
	}

	query := `
		UPDATE users
		SET name = $2, role = $3, active = $4, bio = $5, social_links = $6, updated_at = $7
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Role, user.Active, user.Bio, linksJSON, time.Now(),
	)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err == nil && rows == 0 {
		return fmt.Errorf("user %s not updated", user.ID)
	}
	return err
}

// GetByID retrieves a user by ID
func (r *userRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT id, name, email, role, active, bio, social_links, created_at, updated_at FROM users WHERE id = $1`

	var user models.User
	var linksJSON []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.Role, &user.Active,
		&user.Bio, &linksJSON, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	json.Unmarshal(linksJSON, &user.SocialLinks)
	return &user, nil
}

// EmailExists checks if a user with the given email exists
func (r *userRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", email).Scan(&exists)
	return exists, err
}

// List retrieves all users
func (r *userRepo) List(ctx context.Context) ([]*models.User, error) {
	query := `SELECT id, name, email, role, active, bio, social_links, created_at, updated_at FROM users ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		var linksJSON []byte
		err := rows.Scan(
			&user.ID, &user.Name, &user.Email, &user.Role, &user.Active,
			&user.Bio, &linksJSON, &user.CreatedAt, &user.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		json.Unmarshal(linksJSON, &user.SocialLinks)
		users = append(users, &user)
	}
	return users, rows.Err()
}

// Count returns the total number of users
func (r *userRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count)
	return count, err
}
