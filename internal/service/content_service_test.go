package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/news-cms-api/internal/models"
	"github.com/news-cms-api/internal/service"
)

func TestContentService_CreateArticleDefaultsToDraft(t *testing.T) {
	repos, _, _, _, _, _, _ := newTestRepos()
	svc := newTestServices(repos)

	article, err := svc.Content.CreateArticle(context.Background(), &models.CreateArticleRequest{
		Title: "Tech Today",
		Slug:  "tech-today",
	})
	if err != nil {
		t.Fatalf("CreateArticle failed: %v", err)
	}
	if article.Status != "draft" {
		t.Errorf("Expected draft status, got %q", article.Status)
	}
	if article.PublishedAt != nil {
		t.Error("Draft must not carry a publish timestamp")
	}
	if article.ID == "" {
		t.Error("Expected a generated id")
	}
}

func TestContentService_CreateArticleValidation(t *testing.T) {
	repos, _, _, _, _, _, _ := newTestRepos()
	svc := newTestServices(repos)
	ctx := context.Background()

	if _, err := svc.Content.CreateArticle(ctx, &models.CreateArticleRequest{
		Title: "Bad Slug", Slug: "Not A Slug!",
	}); !errors.Is(err, service.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for bad slug, got %v", err)
	}

	if _, err := svc.Content.CreateArticle(ctx, &models.CreateArticleRequest{
		Title: "Bad Status", Slug: "bad-status", Status: "archived",
	}); !errors.Is(err, service.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for bad status, got %v", err)
	}

	if _, err := svc.Content.CreateArticle(ctx, &models.CreateArticleRequest{
		Title: "Orphan", Slug: "orphan", CategoryID: "no-such-category",
	}); !errors.Is(err, service.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for unknown category, got %v", err)
	}

	if _, err := svc.Content.CreateArticle(ctx, &models.CreateArticleRequest{
		Title: "First", Slug: "shared-slug",
	}); err != nil {
		t.Fatalf("CreateArticle failed: %v", err)
	}
	if _, err := svc.Content.CreateArticle(ctx, &models.CreateArticleRequest{
		Title: "Second", Slug: "shared-slug",
	}); !errors.Is(err, service.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for duplicate slug, got %v", err)
	}
}

func TestContentService_PublishSetsTimestampOnce(t *testing.T) {
	repos, _, _, _, _, _, _ := newTestRepos()
	svc := newTestServices(repos)
	ctx := context.Background()

	article, err := svc.Content.CreateArticle(ctx, &models.CreateArticleRequest{
		Title: "Tech Today", Slug: "tech-today",
	})
	if err != nil {
		t.Fatalf("CreateArticle failed: %v", err)
	}

	published := "published"
	article, err = svc.Content.UpdateArticle(ctx, article.ID, &models.UpdateArticleRequest{Status: &published})
	if err != nil {
		t.Fatalf("UpdateArticle failed: %v", err)
	}
	if article.PublishedAt == nil {
		t.Fatal("Publishing must set the publish timestamp")
	}
	firstPublish := *article.PublishedAt

	// Unpublish and republish keeps the original timestamp
	draft := "draft"
	if _, err = svc.Content.UpdateArticle(ctx, article.ID, &models.UpdateArticleRequest{Status: &draft}); err != nil {
		t.Fatalf("UpdateArticle failed: %v", err)
	}
	article, err = svc.Content.UpdateArticle(ctx, article.ID, &models.UpdateArticleRequest{Status: &published})
	if err != nil {
		t.Fatalf("UpdateArticle failed: %v", err)
	}
	if article.PublishedAt == nil || !article.PublishedAt.Equal(firstPublish) {
		t.Error("Republishing must not move the publish timestamp")
	}
}

func TestContentService_SlugImmutableOncePublished(t *testing.T) {
	repos, _, _, _, _, _, _ := newTestRepos()
	svc := newTestServices(repos)
	ctx := context.Background()

	article, err := svc.Content.CreateArticle(ctx, &models.CreateArticleRequest{
		Title: "Tech Today", Slug: "tech-today", Status: "published",
	})
	if err != nil {
		t.Fatalf("CreateArticle failed: %v", err)
	}

	newSlug := "tech-tomorrow"
	_, err = svc.Content.UpdateArticle(ctx, article.ID, &models.UpdateArticleRequest{Slug: &newSlug})
	if !errors.Is(err, service.ErrInvalidArgument) {
		t.Fatalf("Expected ErrInvalidArgument for slug change after publish, got %v", err)
	}

	// Drafts may still be re-slugged
	draftArticle, err := svc.Content.CreateArticle(ctx, &models.CreateArticleRequest{
		Title: "Draft", Slug: "draft-slug",
	})
	if err != nil {
		t.Fatalf("CreateArticle failed: %v", err)
	}
	renamed := "renamed-draft"
	updated, err := svc.Content.UpdateArticle(ctx, draftArticle.ID, &models.UpdateArticleRequest{Slug: &renamed})
	if err != nil {
		t.Fatalf("UpdateArticle failed: %v", err)
	}
	if updated.Slug != "renamed-draft" {
		t.Errorf("Expected slug to change on a draft, got %q", updated.Slug)
	}
}

func TestContentService_MutationsEvictSearchCache(t *testing.T) {
	repos, articles, videos, categories, _, _, _ := newTestRepos()
	seedSearchFixtures(articles, videos, categories)
	svc := newTestServices(repos)
	ctx := context.Background()

	before, err := svc.Search.Search(ctx, "tech")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(before.Articles) != 1 {
		t.Fatalf("Expected 1 article hit before the mutation, got %d", len(before.Articles))
	}

	if _, err := svc.Content.CreateArticle(ctx, &models.CreateArticleRequest{
		Title: "Tech Deep Dive", Slug: "tech-deep-dive",
	}); err != nil {
		t.Fatalf("CreateArticle failed: %v", err)
	}

	after, err := svc.Search.Search(ctx, "tech")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(after.Articles) != 2 {
		t.Errorf("Expected the new article in fresh results, got %d hits", len(after.Articles))
	}
}

func TestContentService_VideoValidation(t *testing.T) {
	repos, _, _, _, _, _, _ := newTestRepos()
	svc := newTestServices(repos)
	ctx := context.Background()

	if _, err := svc.Content.CreateVideo(ctx, &models.CreateVideoRequest{
		Title: "Clip", Slug: "clip", DurationSeconds: -5,
	}); !errors.Is(err, service.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for negative duration, got %v", err)
	}

	video, err := svc.Content.CreateVideo(ctx, &models.CreateVideoRequest{
		Title: "Clip", Slug: "clip", DurationSeconds: 90,
	})
	if err != nil {
		t.Fatalf("CreateVideo failed: %v", err)
	}
	if video.Status != "draft" {
		t.Errorf("Expected draft status, got %q", video.Status)
	}

	archived := "archived"
	updated, err := svc.Content.UpdateVideo(ctx, video.ID, &models.UpdateVideoRequest{Status: &archived})
	if err != nil {
		t.Fatalf("UpdateVideo failed: %v", err)
	}
	if updated.Status != "archived" {
		t.Errorf("Expected archived status, got %q", updated.Status)
	}
}

func TestContentService_ListRejectsUnknownStatus(t *testing.T) {
	repos, _, _, _, _, _, _ := newTestRepos()
	svc := newTestServices(repos)

	_, err := svc.Content.ListArticles(context.Background(), models.ArticleFilter{Status: "pending"})
	if !errors.Is(err, service.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for unknown status filter, got %v", err)
	}
}
