package service

import (
	"context"
	"fmt"

	"github.com/news-cms-api/internal/cache"
	"github.com/news-cms-api/internal/models"
	"github.com/news-cms-api/internal/repository"
	"github.com/rs/zerolog"
)

// statsService is the concrete implementation of StatsService.
//
// Events are de-duplicated per visitor identifier: the store performs the
// append-if-absent atomically, so a repeat identifier costs no write and the
// reported count is stable under retries.
type statsService struct {
	repos *repository.Repositories
	cache cache.Cache
	log   zerolog.Logger
}

// newStatsService creates a new StatsService
func newStatsService(repos *repository.Repositories, c cache.Cache, log zerolog.Logger) *statsService {
	return &statsService{
		repos: repos,
		cache: c,
		log:   log.With().Str("service", "stats").Logger(),
	}
}

// resolveVisitor picks the de-duplication key for an event: the explicit
// user id if the caller supplied one, else the network address, else the
// literal anonymous fallback.
func resolveVisitor(userID, remoteAddr string) string {
	if userID != "" {
		return userID
	}
	if remoteAddr != "" {
		return remoteAddr
	}
	return models.VisitorAnonymous
}

// RecordArticleEvent records a view or like for an article
func (s *statsService) RecordArticleEvent(ctx context.Context, articleID, action, userID, remoteAddr string) (*models.StatsEventResult, error) {
	if action != models.ActionView && action != models.ActionLike {
		return nil, fmt.Errorf("action must be %q or %q: %w", models.ActionView, models.ActionLike, ErrInvalidArgument)
	}
	if !validID(articleID) {
		return nil, fmt.Errorf("article %s: %w", articleID, ErrNotFound)
	}

	exists, err := s.repos.Article.Exists(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("check article: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("article %s: %w", articleID, ErrNotFound)
	}

	visitor := resolveVisitor(userID, remoteAddr)

	var added bool
	var count int
	switch action {
	case models.ActionView:
		added, err = s.repos.Stats.RecordArticleView(ctx, articleID, visitor)
		if err != nil {
			return nil, fmt.Errorf("record view: %w", err)
		}
		count, err = s.repos.Stats.ArticleViewCount(ctx, articleID)
		if err != nil {
			return nil, fmt.Errorf("count views: %w", err)
		}
	case models.ActionLike:
		added, err = s.repos.Stats.RecordArticleLike(ctx, articleID, visitor)
		if err != nil {
			return nil, fmt.Errorf("record like: %w", err)
		}
		count, err = s.repos.Stats.ArticleLikeCount(ctx, articleID)
		if err != nil {
			return nil, fmt.Errorf("count likes: %w", err)
		}
	}

	s.log.Debug().
		Str("article_id", articleID).
		Str("action", action).
		Bool("counted", added).
		Int("total", count).
		Msg("Event processed")

	// View/like totals feed the dashboard snapshot
	s.cache.Invalidate(ctx, keyPrefixDashboard)

	message := fmt.Sprintf("%s recorded", action)
	if !added {
		message = fmt.Sprintf("%s already recorded for this visitor", action)
	}

	result := &models.StatsEventResult{Message: message}
	if action == models.ActionView {
		result.Views = count
	} else {
		result.Likes = count
	}
	return result, nil
}

// GetArticleStats returns the current view/like counts for an article
func (s *statsService) GetArticleStats(ctx context.Context, articleID string) (*models.ArticleStats, error) {
	if !validID(articleID) {
		return nil, fmt.Errorf("article %s: %w", articleID, ErrNotFound)
	}

	article, err := s.repos.Article.GetByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("fetch article: %w", err)
	}
	if article == nil {
		return nil, fmt.Errorf("article %s: %w", articleID, ErrNotFound)
	}

	views, err := s.repos.Stats.ArticleViewCount(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("count views: %w", err)
	}
	likes, err := s.repos.Stats.ArticleLikeCount(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("count likes: %w", err)
	}

	return &models.ArticleStats{
		ArticleID: article.ID,
		Title:     article.Title,
		Views:     views,
		Likes:     likes,
	}, nil
}

// RecordVideoView records a view for a video. Videos only track views.
func (s *statsService) RecordVideoView(ctx context.Context, videoID, userID, remoteAddr string) (*models.StatsEventResult, error) {
	if !validID(videoID) {
		return nil, fmt.Errorf("video %s: %w", videoID, ErrNotFound)
	}

	exists, err := s.repos.Video.Exists(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("check video: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("video %s: %w", videoID, ErrNotFound)
	}

	visitor := resolveVisitor(userID, remoteAddr)
	added, err := s.repos.Stats.RecordVideoView(ctx, videoID, visitor)
	if err != nil {
		return nil, fmt.Errorf("record view: %w", err)
	}
	count, err := s.repos.Stats.VideoViewCount(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("count views: %w", err)
	}

	s.cache.Invalidate(ctx, keyPrefixDashboard)

	message := "view recorded"
	if !added {
		message = "view already recorded for this visitor"
	}
	return &models.StatsEventResult{Views: count, Message: message}, nil
}

// GetVideoStats returns the current view count for a video
func (s *statsService) GetVideoStats(ctx context.Context, videoID string) (*models.VideoStats, error) {
	if !validID(videoID) {
		return nil, fmt.Errorf("video %s: %w", videoID, ErrNotFound)
	}

	video, err := s.repos.Video.GetByID(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("fetch video: %w", err)
	}
	if video == nil {
		return nil, fmt.Errorf("video %s: %w", videoID, ErrNotFound)
	}

	views, err := s.repos.Stats.VideoViewCount(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("count views: %w", err)
	}

	return &models.VideoStats{
		VideoID: video.ID,
		Title:   video.Title,
		Views:   views,
	}, nil
}
