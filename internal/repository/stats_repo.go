package repository

import (
	"context"

	"github.com/news-cms-api/internal/database"
)

// statsRepo is the concrete implementation of StatsRepository.
//
// Each counter is a table keyed (entity_id, visitor_id); ON CONFLICT DO
// NOTHING makes the append-if-absent check a single atomic statement, so
// concurrent identical identifiers cannot produce duplicate rows.
type statsRepo struct {
	db *database.DB
}

// NewStatsRepo creates a new stats repository
func NewStatsRepo(db *database.DB) StatsRepository {
	return &statsRepo{db: db}
}

// RecordArticleView appends the visitor to the article's view set.
// Returns false when the visitor was already counted.
func (r *statsRepo) RecordArticleView(ctx context.Context, articleID, visitorID string) (bool, error) {
	return r.insertOnce(ctx,
		`INSERT INTO article_views (article_id, visitor_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		articleID, visitorID)
}

// RecordArticleLike appends the visitor to the article's like set
func (r *statsRepo) RecordArticleLike(ctx context.Context, articleID, visitorID string) (bool, error) {
	return r.insertOnce(ctx,
		`INSERT INTO article_likes (article_id, visitor_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		articleID, visitorID)
}

// RecordVideoView appends the visitor to the video's view set
func (r *statsRepo) RecordVideoView(ctx context.Context, videoID, visitorID string) (bool, error) {
	return r.insertOnce(ctx,
		`INSERT INTO video_views (video_id, visitor_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		videoID, visitorID)
}

func (r *statsRepo) insertOnce(ctx context.Context, query, entityID, visitorID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, query, entityID, visitorID)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// ArticleViewCount returns the number of distinct visitors that viewed the article
func (r *statsRepo) ArticleViewCount(ctx context.Context, articleID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM article_views WHERE article_id = $1", articleID).Scan(&count)
	return count, err
}

// ArticleLikeCount returns the number of distinct visitors that liked the article
func (r *statsRepo) ArticleLikeCount(ctx context.Context, articleID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM article_likes WHERE article_id = $1", articleID).Scan(&count)
	return count, err
}

// VideoViewCount returns the number of distinct visitors that viewed the video
func (r *statsRepo) VideoViewCount(ctx context.Context, videoID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM video_views WHERE video_id = $1", videoID).Scan(&count)
	return count, err
}

// TotalArticleViews returns the view row count across all articles
func (r *statsRepo) TotalArticleViews(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM article_views").Scan(&count)
	return count, err
}

// TotalArticleLikes returns the like row count across all articles
func (r *statsRepo) TotalArticleLikes(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM article_likes").Scan(&count)
	return count, err
}

// TotalVideoViews returns the view row count across all videos
func (r *statsRepo) TotalVideoViews(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM video_views").Scan(&count)
	return count, err
}
