package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/news-cms-api/internal/api"
	"github.com/news-cms-api/internal/cache"
	"github.com/news-cms-api/internal/config"
	"github.com/news-cms-api/internal/mocks"
	"github.com/news-cms-api/internal/models"
	"github.com/news-cms-api/internal/repository"
	"github.com/news-cms-api/internal/service"
	"github.com/rs/zerolog"
)

const (
	articleID      = "550e8400-e29b-41d4-a716-446655440000"
	videoID        = "550e8400-e29b-41d4-a716-446655440005"
	adminUserID    = "550e8400-e29b-41d4-a716-446655440101"
	authorUserID   = "550e8400-e29b-41d4-a716-446655440102"
	inactiveUserID = "550e8400-e29b-41d4-a716-446655440103"
)

func setupTestRouter() (*gin.Engine, *repository.Repositories) {
	gin.SetMode(gin.TestMode)

	repos := &repository.Repositories{
		Article:    mocks.NewMockArticleRepository(),
		Video:      mocks.NewMockVideoRepository(),
		Category:   mocks.NewMockCategoryRepository(),
		User:       mocks.NewMockUserRepository(),
		Subscriber: mocks.NewMockSubscriberRepository(),
		Stats:      mocks.NewMockStatsRepository(),
	}

	ctx := context.Background()
	repos.Article.Create(ctx, &models.Article{
		ID: articleID, Title: "Tech Today", Slug: "tech-today", Status: "published",
	})
	repos.User.Create(ctx, &models.User{
		ID: adminUserID, Name: "Admin", Email: "admin@example.com", Role: "admin", Active: true,
	})
	repos.User.Create(ctx, &models.User{
		ID: authorUserID, Name: "Author", Email: "author@example.com", Role: "author", Active: true,
	})
	repos.User.Create(ctx, &models.User{
		ID: inactiveUserID, Name: "Gone", Email: "gone@example.com", Role: "admin", Active: false,
	})

	services := service.NewServices(repos, cache.NewMemory(time.Minute), zerolog.Nop())

	cfg := &config.Config{
		Server: config.ServerConfig{Port: "8080"},
		Cache:  config.CacheConfig{StalenessWindow: time.Minute},
	}

	router := api.NewRouter(services, cfg, zerolog.Nop())
	return router, repos
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func doJSON(router *gin.Engine, method, path string, body interface{}, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
	if response["service"] != "news-cms-api" {
		t.Errorf("Expected service name, got %v", response["service"])
	}
}

func TestPostArticleStats(t *testing.T) {
	router, _ := setupTestRouter()

	w, env := doJSON(router, "POST", "/v1/articles/"+articleID+"/stats",
		map[string]string{"action": "view", "userId": "user-1"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if !env.Success {
		t.Fatal("Expected success envelope")
	}

	var result models.StatsEventResult
	json.Unmarshal(env.Data, &result)
	if result.Views != 1 {
		t.Errorf("Expected 1 view, got %d", result.Views)
	}
	if result.Message != "view recorded" {
		t.Errorf("Unexpected message: %q", result.Message)
	}

	// Same visitor again is a no-op
	w, env = doJSON(router, "POST", "/v1/articles/"+articleID+"/stats",
		map[string]string{"action": "view", "userId": "user-1"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	json.Unmarshal(env.Data, &result)
	if result.Views != 1 {
		t.Errorf("Expected views to stay at 1, got %d", result.Views)
	}
	if result.Message != "view already recorded for this visitor" {
		t.Errorf("Unexpected message: %q", result.Message)
	}
}

func TestPostArticleStatsValidation(t *testing.T) {
	router, _ := setupTestRouter()

	// Missing action
	w, env := doJSON(router, "POST", "/v1/articles/"+articleID+"/stats",
		map[string]string{"userId": "user-1"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if env.Success {
		t.Error("Expected failure envelope")
	}
	if env.Error != "action is required" {
		t.Errorf("Unexpected error message: %q", env.Error)
	}

	// Unknown action
	w, _ = doJSON(router, "POST", "/v1/articles/"+articleID+"/stats",
		map[string]string{"action": "vote"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for unknown action, got %d", w.Code)
	}

	// Unknown article
	w, _ = doJSON(router, "POST", "/v1/articles/00000000-0000-0000-0000-000000000000/stats",
		map[string]string{"action": "view"}, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 for unknown article, got %d", w.Code)
	}

	// Malformed id never reaches the store and reads as missing
	w, _ = doJSON(router, "POST", "/v1/articles/no-such-article/stats",
		map[string]string{"action": "view"}, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 for malformed article id, got %d", w.Code)
	}
}

func TestGetArticleStats(t *testing.T) {
	router, _ := setupTestRouter()

	doJSON(router, "POST", "/v1/articles/"+articleID+"/stats", map[string]string{"action": "view", "userId": "u1"}, nil)
	doJSON(router, "POST", "/v1/articles/"+articleID+"/stats", map[string]string{"action": "like", "userId": "u1"}, nil)

	w, env := doJSON(router, "GET", "/v1/articles/"+articleID+"/stats", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var stats models.ArticleStats
	json.Unmarshal(env.Data, &stats)
	if stats.Views != 1 || stats.Likes != 1 {
		t.Errorf("Expected 1 view and 1 like, got %d/%d", stats.Views, stats.Likes)
	}
	if stats.Title != "Tech Today" {
		t.Errorf("Expected article title, got %q", stats.Title)
	}
}

func TestGetArticleBySlug(t *testing.T) {
	router, _ := setupTestRouter()

	w, env := doJSON(router, "GET", "/v1/articles/tech-today", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var article models.Article
	json.Unmarshal(env.Data, &article)
	if article.ID != articleID {
		t.Errorf("Expected article %s, got %s", articleID, article.ID)
	}

	w, _ = doJSON(router, "GET", "/v1/articles/no-such-slug", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestDashboardRequiresIdentity(t *testing.T) {
	router, _ := setupTestRouter()

	// No identity header
	w, env := doJSON(router, "GET", "/v1/dashboard/stats", nil, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
	if env.Success {
		t.Error("Expected failure envelope")
	}

	// Unknown user
	w, _ = doJSON(router, "GET", "/v1/dashboard/stats", nil, map[string]string{"X-User-ID": "ghost"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 for unknown user, got %d", w.Code)
	}

	// Inactive user
	w, _ = doJSON(router, "GET", "/v1/dashboard/stats", nil, map[string]string{"X-User-ID": inactiveUserID})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 for inactive user, got %d", w.Code)
	}
}

func TestDashboardRoleEnforcement(t *testing.T) {
	router, _ := setupTestRouter()

	// Authors may read dashboard stats
	w, _ := doJSON(router, "GET", "/v1/dashboard/stats", nil, map[string]string{"X-User-ID": authorUserID})
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 for author on stats, got %d", w.Code)
	}

	// But not manage users
	w, _ = doJSON(router, "GET", "/v1/dashboard/users", nil, map[string]string{"X-User-ID": authorUserID})
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status 403 for author on users, got %d", w.Code)
	}

	// Admins may
	w, env := doJSON(router, "GET", "/v1/dashboard/users", nil, map[string]string{"X-User-ID": adminUserID})
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 for admin on users, got %d", w.Code)
	}
	var users []models.User
	json.Unmarshal(env.Data, &users)
	if len(users) != 3 {
		t.Errorf("Expected 3 users, got %d", len(users))
	}
}

func TestDashboardSearch(t *testing.T) {
	router, _ := setupTestRouter()

	w, env := doJSON(router, "GET", "/v1/dashboard/search?q=tech", nil, map[string]string{"X-User-ID": adminUserID})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var results models.SearchResults
	json.Unmarshal(env.Data, &results)
	if len(results.Articles) != 1 || results.Articles[0].Title != "Tech Today" {
		t.Errorf("Expected one article hit, got %+v", results.Articles)
	}
	if results.Videos == nil || results.Categories == nil {
		t.Error("Expected non-nil empty lists for collections without hits")
	}

	// Empty query returns empty lists, not an error
	w, env = doJSON(router, "GET", "/v1/dashboard/search", nil, map[string]string{"X-User-ID": adminUserID})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	json.Unmarshal(env.Data, &results)
	if len(results.Articles) != 0 {
		t.Errorf("Expected no hits for empty query, got %+v", results.Articles)
	}
}

func TestDashboardStatsSnapshot(t *testing.T) {
	router, _ := setupTestRouter()

	doJSON(router, "POST", "/v1/articles/"+articleID+"/stats", map[string]string{"action": "view", "userId": "u1"}, nil)
	doJSON(router, "POST", "/v1/articles/"+articleID+"/stats", map[string]string{"action": "view", "userId": "u2"}, nil)

	w, env := doJSON(router, "GET", "/v1/dashboard/stats", nil, map[string]string{"X-User-ID": adminUserID})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var stats models.DashboardStats
	json.Unmarshal(env.Data, &stats)
	if stats.TotalArticles != 1 {
		t.Errorf("Expected 1 article, got %d", stats.TotalArticles)
	}
	if stats.TotalPublished != 1 {
		t.Errorf("Expected 1 published, got %d", stats.TotalPublished)
	}
	if stats.TotalViews != 2 {
		t.Errorf("Expected 2 views, got %d", stats.TotalViews)
	}
	if stats.TotalUsers != 3 {
		t.Errorf("Expected 3 users, got %d", stats.TotalUsers)
	}
}

func TestCreateArticleViaDashboard(t *testing.T) {
	router, _ := setupTestRouter()

	w, env := doJSON(router, "POST", "/v1/dashboard/articles", models.CreateArticleRequest{
		Title: "Breaking Story",
		Slug:  "breaking-story",
	}, map[string]string{"X-User-ID": authorUserID})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var article models.Article
	json.Unmarshal(env.Data, &article)
	if article.Status != "draft" {
		t.Errorf("Expected draft status, got %q", article.Status)
	}

	// Duplicate slug is rejected
	w, _ = doJSON(router, "POST", "/v1/dashboard/articles", models.CreateArticleRequest{
		Title: "Copycat",
		Slug:  "breaking-story",
	}, map[string]string{"X-User-ID": authorUserID})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for duplicate slug, got %d", w.Code)
	}
}

func TestPublicArticleListing(t *testing.T) {
	router, repos := setupTestRouter()

	// A draft must not leak into the public listing
	repos.Article.Create(context.Background(), &models.Article{
		ID: "550e8400-e29b-41d4-a716-446655440006", Title: "Unfinished", Slug: "unfinished", Status: "draft",
	})

	w, env := doJSON(router, "GET", "/v1/articles", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var articles []models.Article
	json.Unmarshal(env.Data, &articles)
	if len(articles) != 1 {
		t.Fatalf("Expected 1 published article, got %d", len(articles))
	}
	if articles[0].Status != "published" {
		t.Errorf("Expected only published articles, got %q", articles[0].Status)
	}
}

func TestSubscribeEndpoint(t *testing.T) {
	router, _ := setupTestRouter()

	w, env := doJSON(router, "POST", "/v1/subscribers", models.SubscribeRequest{Email: "reader@example.com"}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var sub models.Subscriber
	json.Unmarshal(env.Data, &sub)
	if sub.Status != "active" {
		t.Errorf("Expected active subscription, got %q", sub.Status)
	}

	// Missing email
	w, env = doJSON(router, "POST", "/v1/subscribers", map[string]string{"name": "Reader"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if env.Error != "email is required" {
		t.Errorf("Unexpected error message: %q", env.Error)
	}
}

func TestVideoStatsEndpoints(t *testing.T) {
	router, repos := setupTestRouter()
	repos.Video.Create(context.Background(), &models.Video{
		ID: videoID, Title: "Tech Review", Slug: "tech-review", Status: "published",
	})

	w, env := doJSON(router, "POST", "/v1/videos/"+videoID+"/stats", map[string]string{"userId": "u1"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var result models.StatsEventResult
	json.Unmarshal(env.Data, &result)
	if result.Views != 1 {
		t.Errorf("Expected 1 view, got %d", result.Views)
	}

	w, env = doJSON(router, "GET", "/v1/videos/"+videoID+"/stats", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var stats models.VideoStats
	json.Unmarshal(env.Data, &stats)
	if stats.Views != 1 {
		t.Errorf("Expected 1 view, got %d", stats.Views)
	}

	w, _ = doJSON(router, "POST", "/v1/videos/no-such-video/stats", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}
