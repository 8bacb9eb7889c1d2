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

// videoRepo is the concrete implementation of VideoRepository
type videoRepo struct {
	db *database.DB
}

// NewVideoRepo creates a new video repository
func NewVideoRepo(db *database.DB) VideoRepository {
	return &videoRepo{db: db}
}

const videoColumns = `id, title, slug, description, category_id, uploader_id, duration_seconds, status, tags, created_at, updated_at`

// Create inserts a new video
func (r *videoRepo) Create(ctx context.Context, video *models.Video) error {
	tagsJSON, _ := json.Marshal(video.Tags)
	if video.Tags == nil {
		tagsJSON = []byte("[]")
	}

	query := `
		INSERT INTO videos (id, title, slug, description, category_id, uploader_id, duration_seconds, status, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		video.ID, video.Title, video.Slug, video.Description,
		nullableID(video.CategoryID), nullableID(video.UploaderID),
		video.DurationSeconds, video.Status, tagsJSON,
		video.CreatedAt, video.UpdatedAt,
	)
	return err
}

// Update writes back a full video row
func (r *videoRepo) Update(ctx context.Context, video *models.Video) error {
	tagsJSON, _ := json.Marshal(video.Tags)
	if video.Tags == nil {
		tagsJSON = []byte("[]")
	}

	query := `
		UPDATE videos
		SET title = $2, slug = $3, description = $4, category_id = $5, duration_seconds = $6,
		    status = $7, tags = $8, updated_at = $9
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		video.ID, video.Title, video.Slug, video.Description,
		nullableID(video.CategoryID), video.DurationSeconds, video.Status, tagsJSON, time.Now(),
	)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err == nil && rows == 0 {
		return fmt.Errorf("video %s not updated", video.ID)
	}
	return err
}

// GetByID retrieves a video by ID
func (r *videoRepo) GetByID(ctx context.Context, id string) (*models.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE id = $1`

	var video models.Video
	var tagsJSON []byte
	var categoryID, uploaderID sql.NullString

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&video.ID, &video.Title, &video.Slug, &video.Description,
		&categoryID, &uploaderID, &video.DurationSeconds, &video.Status,
		&tagsJSON, &video.CreatedAt, &video.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	json.Unmarshal(tagsJSON, &video.Tags)
	video.CategoryID = categoryID.String
	video.UploaderID = uploaderID.String

	return &video, nil
}

// Exists checks if a video with the given ID exists
func (r *videoRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM videos WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

// SlugExists checks if a video with the given slug exists
func (r *videoRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM videos WHERE slug = $1)", slug).Scan(&exists)
	return exists, err
}

// List retrieves videos matching the filter, newest first
func (r *videoRepo) List(ctx context.Context, filter models.VideoFilter) ([]*models.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE 1=1`
	args := []interface{}{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))
	args = append(args, (page-1)*limit)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var videos []*models.Video
	for rows.Next() {
		var video models.Video
		var tagsJSON []byte
		var categoryID, uploaderID sql.NullString

		err := rows.Scan(
			&video.ID, &video.Title, &video.Slug, &video.Description,
			&categoryID, &uploaderID, &video.DurationSeconds, &video.Status,
			&tagsJSON, &video.CreatedAt, &video.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		json.Unmarshal(tagsJSON, &video.Tags)
		video.CategoryID = categoryID.String
		video.UploaderID = uploaderID.String
		videos = append(videos, &video)
	}
	return videos, rows.Err()
}

// Count returns the total number of videos
func (r *videoRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM videos").Scan(&count)
	return count, err
}

// SearchHits returns lightweight projections of videos matching the query
// case-insensitively against title and description.
func (r *videoRepo) SearchHits(ctx context.Context, q string, limit int) ([]models.VideoHit, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	like := "%" + escapeLike(q) + "%"
	query := `
		SELECT id, title, slug, description
		FROM videos
		WHERE title ILIKE $1 OR description ILIKE $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, like, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hits := []models.VideoHit{}
	for rows.Next() {
		var hit models.VideoHit
		if err := rows.Scan(&hit.ID, &hit.Title, &hit.Slug, &hit.Excerpt); err != nil {
			return nil, err
		}
		hits = append(hits, hit)
	}
	return hits, rows.Err()
}
