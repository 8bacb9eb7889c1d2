package service

import (
	"context"

	"github.com/news-cms-api/internal/cache"
	"github.com/news-cms-api/internal/models"
	"github.com/news-cms-api/internal/repository"
	"github.com/rs/zerolog"
)

// StatsService defines the interface for view/like event tracking
type StatsService interface {
	RecordArticleEvent(ctx context.Context, articleID, action, userID, remoteAddr string) (*models.StatsEventResult, error)
	GetArticleStats(ctx context.Context, articleID string) (*models.ArticleStats, error)
	RecordVideoView(ctx context.Context, videoID, userID, remoteAddr string) (*models.StatsEventResult, error)
	GetVideoStats(ctx context.Context, videoID string) (*models.VideoStats, error)
}

// SearchService defines the interface for the global search aggregator
type SearchService interface {
	Search(ctx context.Context, q string) (*models.SearchResults, error)
}

// DashboardService defines the interface for dashboard aggregate counts
type DashboardService interface {
	ComputeStats(ctx context.Context) (*models.DashboardStats, error)
}

// ContentService defines the interface for article/video/category management
type ContentService interface {
	CreateArticle(ctx context.Context, req *models.CreateArticleRequest) (*models.Article, error)
	UpdateArticle(ctx context.Context, id string, req *models.UpdateArticleRequest) (*models.Article, error)
	GetArticle(ctx context.Context, id string) (*models.Article, error)
	GetArticleBySlug(ctx context.Context, slug string) (*models.Article, error)
	ListArticles(ctx context.Context, filter models.ArticleFilter) ([]*models.Article, error)

	CreateVideo(ctx context.Context, req *models.CreateVideoRequest) (*models.Video, error)
	UpdateVideo(ctx context.Context, id string, req *models.UpdateVideoRequest) (*models.Video, error)
	GetVideo(ctx context.Context, id string) (*models.Video, error)
	ListVideos(ctx context.Context, filter models.VideoFilter) ([]*models.Video, error)

	CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, req *models.UpdateCategoryRequest) (*models.Category, error)
	ListCategories(ctx context.Context, activeOnly bool) ([]*models.Category, error)
}

// AccountService defines the interface for user and subscriber management
type AccountService interface {
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)

	Subscribe(ctx context.Context, req *models.SubscribeRequest) (*models.Subscriber, error)
	ListSubscribers(ctx context.Context) ([]*models.Subscriber, error)
}

// Services holds all service interfaces
type Services struct {
	Stats     StatsService
	Search    SearchService
	Dashboard DashboardService
	Content   ContentService
	Account   AccountService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, c cache.Cache, log zerolog.Logger) *Services {
	return &Services{
		Stats:     newStatsService(repos, c, log),
		Search:    newSearchService(repos, c, log),
		Dashboard: newDashboardService(repos, c, log),
		Content:   newContentService(repos, c, log),
		Account:   newAccountService(repos, log),
	}
}
