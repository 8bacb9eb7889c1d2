package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/news-cms-api/internal/cache"
	"github.com/news-cms-api/internal/models"
	"github.com/news-cms-api/internal/repository"
	"github.com/rs/zerolog"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// contentService is the concrete implementation of ContentService
type contentService struct {
	repos *repository.Repositories
	cache cache.Cache
	log   zerolog.Logger
}

// newContentService creates a new ContentService
func newContentService(repos *repository.Repositories, c cache.Cache, log zerolog.Logger) *contentService {
	return &contentService{
		repos: repos,
		cache: c,
		log:   log.With().Str("service", "content").Logger(),
	}
}

// invalidateDerived drops cached search and dashboard payloads after any
// content mutation.
func (s *contentService) invalidateDerived(ctx context.Context) {
	s.cache.Invalidate(ctx, keyPrefixSearch)
	s.cache.Invalidate(ctx, keyPrefixDashboard)
}

// checkRefs validates optional category/author references
func (s *contentService) checkRefs(ctx context.Context, categoryID, authorID string) error {
	if categoryID != "" {
		if !validID(categoryID) {
			return fmt.Errorf("unknown category %s: %w", categoryID, ErrInvalidArgument)
		}
		exists, err := s.repos.Category.Exists(ctx, categoryID)
		if err != nil {
			return fmt.Errorf("check category: %w", err)
		}
		if !exists {
			return fmt.Errorf("unknown category %s: %w", categoryID, ErrInvalidArgument)
		}
	}
	if authorID != "" {
		if !validID(authorID) {
			return fmt.Errorf("unknown author %s: %w", authorID, ErrInvalidArgument)
		}
		user, err := s.repos.User.GetByID(ctx, authorID)
		if err != nil {
			return fmt.Errorf("check author: %w", err)
		}
		if user == nil {
			return fmt.Errorf("unknown author %s: %w", authorID, ErrInvalidArgument)
		}
	}
	return nil
}

// Articles

// CreateArticle creates a new article, defaulting to draft status
func (s *contentService) CreateArticle(ctx context.Context, req *models.CreateArticleRequest) (*models.Article, error) {
	if !slugRegex.MatchString(req.Slug) {
		return nil, fmt.Errorf("slug %q is not URL-safe: %w", req.Slug, ErrInvalidArgument)
	}
	status := req.Status
	if status == "" {
		status = "draft"
	}
	if !models.ValidArticleStatuses[status] {
		return nil, fmt.Errorf("status must be draft or published: %w", ErrInvalidArgument)
	}
	if err := s.checkRefs(ctx, req.CategoryID, req.AuthorID); err != nil {
		return nil, err
	}

	taken, err := s.repos.Article.SlugExists(ctx, req.Slug)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("slug %q already in use: %w", req.Slug, ErrInvalidArgument)
	}

	now := time.Now()
	article := &models.Article{
		ID:            uuid.New().String(),
		Title:         req.Title,
		Slug:          req.Slug,
		Body:          req.Body,
		Summary:       req.Summary,
		CategoryID:    req.CategoryID,
		AuthorID:      req.AuthorID,
		Status:        status,
		Tags:          req.Tags,
		FeaturedImage: req.FeaturedImage,
		IsBreaking:    req.IsBreaking,
		Region:        req.Region,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if status == "published" {
		article.PublishedAt = &now
	}

	if err := s.repos.Article.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	s.invalidateDerived(ctx)
	s.log.Info().Str("article_id", article.ID).Str("slug", article.Slug).Msg("Article created")
	return article, nil
}

// UpdateArticle applies a partial update. The slug is immutable once the
// article has been published.
func (s *contentService) UpdateArticle(ctx context.Context, id string, req *models.UpdateArticleRequest) (*models.Article, error) {
	if !validID(id) {
		return nil, fmt.Errorf("article %s: %w", id, ErrNotFound)
	}

	article, err := s.repos.Article.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch article: %w", err)
	}
	if article == nil {
		return nil, fmt.Errorf("article %s: %w", id, ErrNotFound)
	}

	if req.Slug != nil && *req.Slug != article.Slug {
		if article.PublishedAt != nil {
			return nil, fmt.Errorf("slug is immutable once published: %w", ErrInvalidArgument)
		}
		if !slugRegex.MatchString(*req.Slug) {
			return nil, fmt.Errorf("slug %q is not URL-safe: %w", *req.Slug, ErrInvalidArgument)
		}
		taken, err := s.repos.Article.SlugExists(ctx, *req.Slug)
		if err != nil {
			return nil, fmt.Errorf("check slug: %w", err)
		}
		if taken {
			return nil, fmt.Errorf("slug %q already in use: %w", *req.Slug, ErrInvalidArgument)
		}
		article.Slug = *req.Slug
	}

	if req.Status != nil && *req.Status != article.Status {
		if !models.ValidArticleStatuses[*req.Status] {
			return nil, fmt.Errorf("status must be draft or published: %w", ErrInvalidArgument)
		}
		article.Status = *req.Status
		if *req.Status == "published" && article.PublishedAt == nil {
			now := time.Now()
			article.PublishedAt = &now
		}
	}

	if req.CategoryID != nil && *req.CategoryID != article.CategoryID {
		if err := s.checkRefs(ctx, *req.CategoryID, ""); err != nil {
			return nil, err
		}
		article.CategoryID = *req.CategoryID
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Body != nil {
		article.Body = *req.Body
	}
	if req.Summary != nil {
		article.Summary = *req.Summary
	}
	if req.Tags != nil {
		article.Tags = *req.Tags
	}
	if req.FeaturedImage != nil {
		article.FeaturedImage = *req.FeaturedImage
	}
	if req.IsBreaking != nil {
		article.IsBreaking = *req.IsBreaking
	}
	if req.Region != nil {
		article.Region = *req.Region
	}
	article.UpdatedAt = time.Now()

	if err := s.repos.Article.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}

	s.invalidateDerived(ctx)
	return article, nil
}

// GetArticle retrieves an article by ID
func (s *contentService) GetArticle(ctx context.Context, id string) (*models.Article, error) {
	if !validID(id) {
		return nil, fmt.Errorf("article %s: %w", id, ErrNotFound)
	}

	article, err := s.repos.Article.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch article: %w", err)
	}
	if article == nil {
		return nil, fmt.Errorf("article %s: %w", id, ErrNotFound)
	}
	return article, nil
}

// GetArticleBySlug retrieves an article by slug
func (s *contentService) GetArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	article, err := s.repos.Article.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("fetch article: %w", err)
	}
	if article == nil {
		return nil, fmt.Errorf("article %s: %w", slug, ErrNotFound)
	}
	return article, nil
}

// ListArticles retrieves articles matching the filter
func (s *contentService) ListArticles(ctx context.Context, filter models.ArticleFilter) ([]*models.Article, error) {
	if filter.Status != "" && !models.ValidArticleStatuses[filter.Status] {
		return nil, fmt.Errorf("status must be draft or published: %w", ErrInvalidArgument)
	}
	articles, err := s.repos.Article.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	if articles == nil {
		articles = []*models.Article{}
	}
	return articles, nil
}

// Videos

// CreateVideo creates a new video, defaulting to draft status
func (s *contentService) CreateVideo(ctx context.Context, req *models.CreateVideoRequest) (*models.Video, error) {
	if !slugRegex.MatchString(req.Slug) {
		return nil, fmt.Errorf("slug %q is not URL-safe: %w", req.Slug, ErrInvalidArgument)
	}
	status := req.Status
	if status == "" {
		status = "draft"
	}
	if !models.ValidVideoStatuses[status] {
		return nil, fmt.Errorf("status must be draft, published or archived: %w", ErrInvalidArgument)
	}
	if req.DurationSeconds < 0 {
		return nil, fmt.Errorf("duration must not be negative: %w", ErrInvalidArgument)
	}
	if err := s.checkRefs(ctx, req.CategoryID, req.UploaderID); err != nil {
		return nil, err
	}

	taken, err := s.repos.Video.SlugExists(ctx, req.Slug)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("slug %q already in use: %w", req.Slug, ErrInvalidArgument)
	}

	now := time.Now()
	video := &models.Video{
		ID:              uuid.New().String(),
		Title:           req.Title,
		Slug:            req.Slug,
		Description:     req.Description,
		CategoryID:      req.CategoryID,
		UploaderID:      req.UploaderID,
		DurationSeconds: req.DurationSeconds,
		Status:          status,
		Tags:            req.Tags,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repos.Video.Create(ctx, video); err != nil {
		return nil, fmt.Errorf("create video: %w", err)
	}

	s.invalidateDerived(ctx)
	s.log.Info().Str("video_id", video.ID).Str("slug", video.Slug).Msg("Video created")
	return video, nil
}

// UpdateVideo applies a partial update
func (s *contentService) UpdateVideo(ctx context.Context, id string, req *models.UpdateVideoRequest) (*models.Video, error) {
	if !validID(id) {
		return nil, fmt.Errorf("video %s: %w", id, ErrNotFound)
	}

	video, err := s.repos.Video.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch video: %w", err)
	}
	if video == nil {
		return nil, fmt.Errorf("video %s: %w", id, ErrNotFound)
	}

	if req.Slug != nil && *req.Slug != video.Slug {
		if !slugRegex.MatchString(*req.Slug) {
			return nil, fmt.Errorf("slug %q is not URL-safe: %w", *req.Slug, ErrInvalidArgument)
		}
		taken, err := s.repos.Video.SlugExists(ctx, *req.Slug)
		if err != nil {
			return nil, fmt.Errorf("check slug: %w", err)
		}
		if taken {
			return nil, fmt.Errorf("slug %q already in use: %w", *req.Slug, ErrInvalidArgument)
		}
		video.Slug = *req.Slug
	}

	if req.Status != nil {
		if !models.ValidVideoStatuses[*req.Status] {
			return nil, fmt.Errorf("status must be draft, published or archived: %w", ErrInvalidArgument)
		}
		video.Status = *req.Status
	}

	if req.CategoryID != nil && *req.CategoryID != video.CategoryID {
		if err := s.checkRefs(ctx, *req.CategoryID, ""); err != nil {
			return nil, err
		}
		video.CategoryID = *req.CategoryID
	}

	if req.Title != nil {
		video.Title = *req.Title
	}
	if req.Description != nil {
		video.Description = *req.Description
	}
	if req.DurationSeconds != nil {
		if *req.DurationSeconds < 0 {
			return nil, fmt.Errorf("duration must not be negative: %w", ErrInvalidArgument)
		}
		video.DurationSeconds = *req.DurationSeconds
	}
	if req.Tags != nil {
		video.Tags = *req.Tags
	}
	video.UpdatedAt = time.Now()

	if err := s.repos.Video.Update(ctx, video); err != nil {
		return nil, fmt.Errorf("update video: %w", err)
	}

	s.invalidateDerived(ctx)
	return video, nil
}

// GetVideo retrieves a video by ID
func (s *contentService) GetVideo(ctx context.Context, id string) (*models.Video, error) {
	if !validID(id) {
		return nil, fmt.Errorf("video %s: %w", id, ErrNotFound)
	}

	video, err := s.repos.Video.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch video: %w", err)
	}
	if video == nil {
		return nil, fmt.Errorf("video %s: %w", id, ErrNotFound)
	}
	return video, nil
}

// ListVideos retrieves videos matching the filter
func (s *contentService) ListVideos(ctx context.Context, filter models.VideoFilter) ([]*models.Video, error) {
	if filter.Status != "" && !models.ValidVideoStatuses[filter.Status] {
		return nil, fmt.Errorf("status must be draft, published or archived: %w", ErrInvalidArgument)
	}
	videos, err := s.repos.Video.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	if videos == nil {
		videos = []*models.Video{}
	}
	return videos, nil
}

// Categories

// CreateCategory creates a new, active category
func (s *contentService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	if !slugRegex.MatchString(req.Slug) {
		return nil, fmt.Errorf("slug %q is not URL-safe: %w", req.Slug, ErrInvalidArgument)
	}

	taken, err := s.repos.Category.SlugExists(ctx, req.Slug)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("slug %q already in use: %w", req.Slug, ErrInvalidArgument)
	}

	now := time.Now()
	category := &models.Category{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repos.Category.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.invalidateDerived(ctx)
	s.log.Info().Str("category_id", category.ID).Str("slug", category.Slug).Msg("Category created")
	return category, nil
}

// UpdateCategory applies a partial update
func (s *contentService) UpdateCategory(ctx context.Context, id string, req *models.UpdateCategoryRequest) (*models.Category, error) {
	if !validID(id) {
		return nil, fmt.Errorf("category %s: %w", id, ErrNotFound)
	}

	category, err := s.repos.Category.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch category: %w", err)
	}
	if category == nil {
		return nil, fmt.Errorf("category %s: %w", id, ErrNotFound)
	}

	if req.Slug != nil && *req.Slug != category.Slug {
		if !slugRegex.MatchString(*req.Slug) {
			return nil, fmt.Errorf("slug %q is not URL-safe: %w", *req.Slug, ErrInvalidArgument)
		}
		taken, err := s.repos.Category.SlugExists(ctx, *req.Slug)
		if err != nil {
			return nil, fmt.Errorf("check slug: %w", err)
		}
		if taken {
			return nil, fmt.Errorf("slug %q already in use: %w", *req.Slug, ErrInvalidArgument)
		}
		category.Slug = *req.Slug
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	category.UpdatedAt = time.Now()

	if err := s.repos.Category.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}

	s.invalidateDerived(ctx)
	return category, nil
}

// ListCategories retrieves categories, optionally only active ones
func (s *contentService) ListCategories(ctx context.Context, activeOnly bool) ([]*models.Category, error) {
	categories, err := s.repos.Category.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if categories == nil {
		categories = []*models.Category{}
	}
	return categories, nil
}
