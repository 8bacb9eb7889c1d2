package repository

import (
	"context"

	"github.com/news-cms-api/internal/database"
	"github.com/news-cms-api/internal/models"
)

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	Update(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id string) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	Exists(ctx context.Context, id string) (bool, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, filter models.ArticleFilter) ([]*models.Article, error)
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status string) (int, error)
	CountBreaking(ctx context.Context) (int, error)
	SearchHits(ctx context.Context, q string, limit int) ([]models.ArticleHit, error)
}

// VideoRepository defines the interface for video data operations
type VideoRepository interface {
	Create(ctx context.Context, video *models.Video) error
	Update(ctx context.Context, video *models.Video) error
	GetByID(ctx context.Context, id string) (*models.Video, error)
	Exists(ctx context.Context, id string) (bool, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, filter models.VideoFilter) ([]*models.Video, error)
	Count(ctx context.Context) (int, error)
	SearchHits(ctx context.Context, q string, limit int) ([]models.VideoHit, error)
}

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id string) (*models.Category, error)
	Exists(ctx context.Context, id string) (bool, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, activeOnly bool) ([]*models.Category, error)
	Count(ctx context.Context) (int, error)
	SearchHits(ctx context.Context, q string, limit int) ([]models.CategoryHit, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]*models.User, error)
	Count(ctx context.Context) (int, error)
}

// SubscriberRepository defines the interface for subscriber data operations
type SubscriberRepository interface {
	Create(ctx context.Context, sub *models.Subscriber) error
	EmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]*models.Subscriber, error)
	CountByStatus(ctx context.Context, status string) (int, error)
}

// StatsRepository defines the interface for the visitor-deduplicated
// view/like counting tables. RecordX returns whether a new row was written;
// a repeat identifier is a no-op at the store.
type StatsRepository interface {
	RecordArticleView(ctx context.Context, articleID, visitorID string) (bool, error)
	RecordArticleLike(ctx context.Context, articleID, visitorID string) (bool, error)
	RecordVideoView(ctx context.Context, videoID, visitorID string) (bool, error)
	ArticleViewCount(ctx context.Context, articleID string) (int, error)
	ArticleLikeCount(ctx context.Context, articleID string) (int, error)
	VideoViewCount(ctx context.Context, videoID string) (int, error)
	TotalArticleViews(ctx context.Context) (int, error)
	TotalArticleLikes(ctx context.Context) (int, error)
	TotalVideoViews(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Article    ArticleRepository
	Video      VideoRepository
	Category   CategoryRepository
	User       UserRepository
	Subscriber SubscriberRepository
	Stats      StatsRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Article:    NewArticleRepo(db),
		Video:      NewVideoRepo(db),
		Category:   NewCategoryRepo(db),
		User:       NewUserRepo(db),
		Subscriber: NewSubscriberRepo(db),
		Stats:      NewStatsRepo(db),
	}
}
