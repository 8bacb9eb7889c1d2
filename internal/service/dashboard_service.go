package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/news-cms-api/internal/cache"
	"github.com/news-cms-api/internal/models"
	"github.com/news-cms-api/internal/repository"
	"github.com/rs/zerolog"
)

// keyPrefixDashboard namespaces cached dashboard payloads
const keyPrefixDashboard = "dashboard:"

const keyDashboardStats = keyPrefixDashboard + "stats"

// dashboardService is the concrete implementation of DashboardService
type dashboardService struct {
	repos *repository.Repositories
	cache cache.Cache
	log   zerolog.Logger
}

// newDashboardService creates a new DashboardService
func newDashboardService(repos *repository.Repositories, c cache.Cache, log zerolog.Logger) *dashboardService {
	return &dashboardService{
		repos: repos,
		cache: c,
		log:   log.With().Str("service", "dashboard").Logger(),
	}
}

// ComputeStats builds the dashboard snapshot. Unlike search, any failure
// aborts the whole computation: dashboard consumers expect a consistent
// snapshot, never a partial one.
func (s *dashboardService) ComputeStats(ctx context.Context) (*models.DashboardStats, error) {
	if data, ok := s.cache.Get(ctx, keyDashboardStats); ok {
		var cached models.DashboardStats
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	stats := &models.DashboardStats{}
	var err error

	if stats.TotalArticles, err = s.repos.Article.Count(ctx); err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}
	if stats.TotalDrafts, err = s.repos.Article.CountByStatus(ctx, "draft"); err != nil {
		return nil, fmt.Errorf("count drafts: %w", err)
	}
	if stats.TotalPublished, err = s.repos.Article.CountByStatus(ctx, "published"); err != nil {
		return nil, fmt.Errorf("count published: %w", err)
	}
	if stats.TotalBreaking, err = s.repos.Article.CountBreaking(ctx); err != nil {
		return nil, fmt.Errorf("count breaking: %w", err)
	}
	if stats.TotalVideos, err = s.repos.Video.Count(ctx); err != nil {
		return nil, fmt.Errorf("count videos: %w", err)
	}
	if stats.TotalCategories, err = s.repos.Category.Count(ctx); err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}
	if stats.TotalUsers, err = s.repos.User.Count(ctx); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if stats.TotalSubscribers, err = s.repos.Subscriber.CountByStatus(ctx, models.SubscriberStatusActive); err != nil {
		return nil, fmt.Errorf("count subscribers: %w", err)
	}

	// Views and likes are recomputed from the per-visitor tables so the
	// snapshot agrees with the stats tracker's source of truth.
	articleViews, err := s.repos.Stats.TotalArticleViews(ctx)
	if err != nil {
		return nil, fmt.Errorf("count article views: %w", err)
	}
	videoViews, err := s.repos.Stats.TotalVideoViews(ctx)
	if err != nil {
		return nil, fmt.Errorf("count video views: %w", err)
	}
	stats.TotalViews = articleViews + videoViews

	if stats.TotalLikes, err = s.repos.Stats.TotalArticleLikes(ctx); err != nil {
		return nil, fmt.Errorf("count likes: %w", err)
	}

	if data, err := json.Marshal(stats); err == nil {
		s.cache.Set(ctx, keyDashboardStats, data)
	}

	return stats, nil
}
