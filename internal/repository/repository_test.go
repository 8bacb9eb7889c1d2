package repository_test

import (
	"context"
	"testing"

	"github.com/news-cms-api/internal/mocks"
	"github.com/news-cms-api/internal/models"
)

func TestMockStatsRepository_AppendIfAbsent(t *testing.T) {
	repo := mocks.NewMockStatsRepository()
	ctx := context.Background()

	added, err := repo.RecordArticleView(ctx, "article-1", "visitor-1")
	if err != nil {
		t.Fatalf("RecordArticleView failed: %v", err)
	}
	if !added {
		t.Error("First identifier should be appended")
	}

	added, _ = repo.RecordArticleView(ctx, "article-1", "visitor-1")
	if added {
		t.Error("Repeat identifier must be a no-op")
	}

	repo.RecordArticleView(ctx, "article-1", "visitor-2")

	count, err := repo.ArticleViewCount(ctx, "article-1")
	if err != nil {
		t.Fatalf("ArticleViewCount failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 views, got %d", count)
	}

	// Views and likes are independent sets
	repo.RecordArticleLike(ctx, "article-1", "visitor-1")
	likes, _ := repo.ArticleLikeCount(ctx, "article-1")
	if likes != 1 {
		t.Errorf("Expected 1 like, got %d", likes)
	}
}

func TestMockStatsRepository_Totals(t *testing.T) {
	repo := mocks.NewMockStatsRepository()
	ctx := context.Background()

	repo.RecordArticleView(ctx, "article-1", "v1")
	repo.RecordArticleView(ctx, "article-1", "v2")
	repo.RecordArticleView(ctx, "article-2", "v1")
	repo.RecordVideoView(ctx, "video-1", "v1")

	articleViews, _ := repo.TotalArticleViews(ctx)
	if articleViews != 3 {
		t.Errorf("Expected 3 article views, got %d", articleViews)
	}
	videoViews, _ := repo.TotalVideoViews(ctx)
	if videoViews != 1 {
		t.Errorf("Expected 1 video view, got %d", videoViews)
	}
}

func TestMockArticleRepository_SlugLookup(t *testing.T) {
	repo := mocks.NewMockArticleRepository()
	ctx := context.Background()

	article := &models.Article{ID: "article-1", Title: "Tech Today", Slug: "tech-today"}
	if err := repo.Create(ctx, article); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	stored, err := repo.GetBySlug(ctx, "tech-today")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if stored == nil || stored.ID != "article-1" {
		t.Errorf("Expected article-1 by slug, got %+v", stored)
	}

	missing, err := repo.GetBySlug(ctx, "no-such-slug")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for unknown slug, got %+v", missing)
	}

	exists, _ := repo.SlugExists(ctx, "tech-today")
	if !exists {
		t.Error("SlugExists should report the stored slug")
	}
}
