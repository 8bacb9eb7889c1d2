package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/news-cms-api/internal/database"
	"github.com/news-cms-api/internal/models"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

const articleColumns = `id, title, slug, body, summary, category_id, author_id, status, tags, featured_image, is_breaking, region, created_at, published_at, updated_at`

// Create inserts a new article
func (r *articleRepo) Create(ctx context.Context, article *models.Article) error {
	tagsJSON, _ := json.Marshal(article.Tags)
	if article.Tags == nil {
		tagsJSON = []byte("[]")
	}

	query := `
		INSERT INTO articles (id, title, slug, body, summary, category_id, author_id, status, tags, featured_image, is_breaking, region, created_at, published_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := r.db.ExecContext(ctx, query,
		article.ID, article.Title, article.Slug, article.Body, article.Summary,
		nullableID(article.CategoryID), nullableID(article.AuthorID),
		article.Status, tagsJSON, article.FeaturedImage, article.IsBreaking, article.Region,
		article.CreatedAt, article.PublishedAt, article.UpdatedAt,
	)
	return err
}

// Update writes back a full article row
func (r *articleRepo) Update(ctx context.Context, article *models.Article) error {
	tagsJSON, _ := json.Marshal(article.Tags)
	if article.Tags == nil {
		tagsJSON = []byte("[]")
	}

	query := `
		UPDATE articles
		SET title = $2, slug = $3, body = $4, summary = $5, category_id = $6, status = $7,
		    tags = $8, featured_image = $9, is_breaking = $10, region = $11, published_at = $12, updated_at = $13
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		article.ID, article.Title, article.Slug, article.Body, article.Summary,
		nullableID(article.CategoryID), article.Status,
		tagsJSON, article.FeaturedImage, article.IsBreaking, article.Region,
		article.PublishedAt, time.Now(),
	)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err == nil && rows == 0 {
		return fmt.Errorf("article %s not updated", article.ID)
	}
	return err
}

// GetByID retrieves an article by ID
func (r *articleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// GetBySlug retrieves an article by slug
func (r *articleRepo) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE slug = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, slug))
}

func (r *articleRepo) scanOne(row *sql.Row) (*models.Article, error) {
	var article models.Article
	var tagsJSON []byte
	var categoryID, authorID sql.NullString
	var publishedAt sql.NullTime

	err := row.Scan(
		&article.ID, &article.Title, &article.Slug, &article.Body, &article.Summary,
		&categoryID, &authorID, &article.Status, &tagsJSON, &article.FeaturedImage,
		&article.IsBreaking, &article.Region, &article.CreatedAt, &publishedAt, &article.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	json.Unmarshal(tagsJSON, &article.Tags)
	article.CategoryID = categoryID.String
	article.AuthorID = authorID.String
	if publishedAt.Valid {
		article.PublishedAt = &publishedAt.Time
	}

	return &article, nil
}

// Exists checks if an article with the given ID exists
func (r *articleRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM articles WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

// SlugExists checks if an article with the given slug exists
func (r *articleRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM articles WHERE slug = $1)", slug).Scan(&exists)
	return exists, err
}

// List retrieves articles matching the filter, newest first
func (r *articleRepo) List(ctx context.Context, filter models.ArticleFilter) ([]*models.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE 1=1`
	args := []interface{}{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		query += fmt.Sprintf(" AND category_id = $%d", len(args))
	}
	if filter.Breaking != nil {
		args = append(args, *filter.Breaking)
		query += fmt.Sprintf(" AND is_breaking = $%d", len(args))
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

	var articles []*models.Article
	for rows.Next() {
		var article models.Article
		var tagsJSON []byte
		var categoryID, authorID sql.NullString
		var publishedAt sql.NullTime

		err := rows.Scan(
			&article.ID, &article.Title, &article.Slug, &article.Body, &article.Summary,
			&categoryID, &authorID, &article.Status, &tagsJSON, &article.FeaturedImage,
			&article.IsBreaking, &article.Region, &article.CreatedAt, &publishedAt, &article.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		json.Unmarshal(tagsJSON, &article.Tags)
		article.CategoryID = categoryID.String
		article.AuthorID = authorID.String
		if publishedAt.Valid {
			article.PublishedAt = &publishedAt.Time
		}
		articles = append(articles, &article)
	}
	return articles, rows.Err()
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count)
	return count, err
}

// CountByStatus returns the number of articles with the given status
func (r *articleRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles WHERE status = $1", status).Scan(&count)
	return count, err
}

// CountBreaking returns the number of breaking articles
func (r *articleRepo) CountBreaking(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles WHERE is_breaking = TRUE").Scan(&count)
	return count, err
}

// SearchHits returns lightweight projections of articles matching the query
// case-insensitively against title, body and summary.
func (r *articleRepo) SearchHits(ctx context.Context, q string, limit int) ([]models.ArticleHit, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	like := "%" + escapeLike(q) + "%"
	query := `
		SELECT id, title, slug, summary
		FROM articles
		WHERE title ILIKE $1 OR body ILIKE $1 OR summary ILIKE $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, like, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hits := []models.ArticleHit{}
	for rows.Next() {
		var hit models.ArticleHit
		if err := rows.Scan(&hit.ID, &hit.Title, &hit.Slug, &hit.Excerpt); err != nil {
			return nil, err
		}
		hits = append(hits, hit)
	}
	return hits, rows.Err()
}

// nullableID maps an empty string to NULL for optional UUID references
func nullableID(id string) interface{} {
	if id == "" {
		return nil
	}
	return id
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE wildcards so the query text matches literally
func escapeLike(q string) string {
	return likeEscaper.Replace(q)
}
