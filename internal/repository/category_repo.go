package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/news-cms-api/internal/database"
	"github.com/news-cms-api/internal/models"
)

// categoryRepo is the concrete implementation of CategoryRepository
type categoryRepo struct {
	db *database.DB
}

// NewCategoryRepo creates a new category repository
func NewCategoryRepo(db *database.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

// Create inserts a new category
func (r *categoryRepo) Create(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO categories (id, name, slug, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		category.ID, category.Name, category.Slug, category.Description,
		category.IsActive, category.CreatedAt, category.UpdatedAt,
	)
	return err
}

// Update writes back a full category row
func (r *categoryRepo) Update(ctx context.Context, category *models.Category) error {
	query := `
		UPDATE categories
		SET name = $2, slug = $3, description = $4, is_active = $5, updated_at = $6
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		category.ID, category.Name, category.Slug, category.Description,
		category.IsActive, time.Now(),
	)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err == nil && rows == 0 {
		return fmt.Errorf("category %s not updated", category.ID)
	}
	return err
}

// GetByID retrieves a category by ID
func (r *categoryRepo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	query := `SELECT id, name, slug, description, is_active, created_at, updated_at FROM categories WHERE id = $1`

	var category models.Category
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&category.ID, &category.Name, &category.Slug, &category.Description,
		&category.IsActive, &category.CreatedAt, &category.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Exists checks if a category with the given ID exists
func (r *categoryRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

// SlugExists checks if a category with the given slug exists
func (r *categoryRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM categories WHERE slug = $1)", slug).Scan(&exists)
	return exists, err
}

// List retrieves categories, optionally only active ones
func (r *categoryRepo) List(ctx context.Context, activeOnly bool) ([]*models.Category, error) {
	query := `SELECT id, name, slug, description, is_active, created_at, updated_at FROM categories`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		var category models.Category
		err := rows.Scan(
			&category.ID, &category.Name, &category.Slug, &category.Description,
			&category.IsActive, &category.CreatedAt, &category.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		categories = append(categories, &category)
	}
	return categories, rows.Err()
}

// Count returns the total number of categories
func (r *categoryRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM categories").Scan(&count)
	return count, err
}

// SearchHits returns lightweight projections of categories matching the
// query case-insensitively against name and description.
func (r *categoryRepo) SearchHits(ctx context.Context, q string, limit int) ([]models.CategoryHit, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	like := "%" + escapeLike(q) + "%"
	query := `
		SELECT id, name, slug, description
		FROM categories
		WHERE name ILIKE $1 OR description ILIKE $1
		ORDER BY name
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, like, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hits := []models.CategoryHit{}
	for rows.Next() {
		var hit models.CategoryHit
		if err := rows.Scan(&hit.ID, &hit.Name, &hit.Slug, &hit.Description); err != nil {
			return nil, err
		}
		hits = append(hits, hit)
	}
	return hits, rows.Err()
}
