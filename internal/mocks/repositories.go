package mocks

import (
	"context"
	"strings"
	"sync"

	"github.com/news-cms-api/internal/models"
)

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	Articles      map[string]*models.Article
	SlugToArticle map[string]*models.Article
	FailWith      error
	SearchFail    error
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles:      make(map[string]*models.Article),
		SlugToArticle: make(map[string]*models.Article),
	}
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	m.Articles[article.ID] = article
	m.SlugToArticle[article.Slug] = article
	return nil
}

func (m *MockArticleRepository) Update(ctx context.Context, article *models.Article) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	m.Articles[article.ID] = article
	m.SlugToArticle[article.Slug] = article
	return nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	return m.Articles[id], nil
}

func (m *MockArticleRepository) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	return m.SlugToArticle[slug], nil
}

func (m *MockArticleRepository) Exists(ctx context.Context, id string) (bool, error) {
	if m.FailWith != nil {
		return false, m.FailWith
	}
	_, exists := m.Articles[id]
	return exists, nil
}

func (m *MockArticleRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	if m.FailWith != nil {
		return false, m.FailWith
	}
	_, exists := m.SlugToArticle[slug]
	return exists, nil
}

func (m *MockArticleRepository) List(ctx context.Context, filter models.ArticleFilter) ([]*models.Article, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	var articles []*models.Article
	for _, a := range m.Articles {
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.CategoryID != "" && a.CategoryID != filter.CategoryID {
			continue
		}
		if filter.Breaking != nil && a.IsBreaking != *filter.Breaking {
			continue
		}
		articles = append(articles, a)
	}
	return articles, nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int, error) {
	if m.FailWith != nil {
		return 0, m.FailWith
	}
	return len(m.Articles), nil
}

func (m *MockArticleRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	if m.FailWith != nil {
		return 0, m.FailWith
	}
	count := 0
	for _, a := range m.Articles {
		if a.Status == status {
			count++
		}
	}
	return count, nil
}

func (m *MockArticleRepository) CountBreaking(ctx context.Context) (int, error) {
	if m.FailWith != nil {
		return 0, m.FailWith
	}
	count := 0
	for _, a := range m.Articles {
		if a.IsBreaking {
			count++
		}
	}
	return count, nil
}

func (m *MockArticleRepository) SearchHits(ctx context.Context, q string, limit int) ([]models.ArticleHit, error) {
	if m.SearchFail != nil {
		return nil, m.SearchFail
	}
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	q = strings.ToLower(q)
	hits := []models.ArticleHit{}
	for _, a := range m.Articles {
		if strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.Body), q) ||
			strings.Contains(strings.ToLower(a.Summary), q) {
			hits = append(hits, models.ArticleHit{ID: a.ID, Title: a.Title, Slug: a.Slug, Excerpt: a.Summary})
		}
	}
	return hits, nil
}

// MockVideoRepository is a mock implementation of VideoRepository
type MockVideoRepository struct {
	Videos      map[string]*models.Video
	SlugToVideo map[string]*models.Video
	FailWith    error
	SearchFail  error
}

func NewMockVideoRepository() *MockVideoRepository {
	return &MockVideoRepository{
		Videos:      make(map[string]*models.Video),
		SlugToVideo: make(map[string]*models.Video),
	}
}

func (m *MockVideoRepository) Create(ctx context.Context, video *models.Video) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	m.Videos[video.ID] = video
	m.SlugToVideo[video.Slug] = video
	return nil
}

func (m *MockVideoRepository) Update(ctx context.Context, video *models.Video) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	m.Videos[video.ID] = video
	m.SlugToVideo[video.Slug] = video
	return nil
}

func (m *MockVideoRepository) GetByID(ctx context.Context, id string) (*models.Video, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	return m.Videos[id], nil
}

func (m *MockVideoRepository) Exists(ctx context.Context, id string) (bool, error) {
	if m.FailWith != nil {
		return false, m.FailWith
	}
	_, exists := m.Videos[id]
	return exists, nil
}

func (m *MockVideoRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	if m.FailWith != nil {
		return false, m.FailWith
	}
	_, exists := m.SlugToVideo[slug]
	return exists, nil
}

func (m *MockVideoRepository) List(ctx context.Context, filter models.VideoFilter) ([]*models.Video, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	var videos []*models.Video
	for _, v := range m.Videos {
		if filter.Status != "" && v.Status != filter.Status {
			continue
		}
		videos = append(videos, v)
	}
	return videos, nil
}

func (m *MockVideoRepository) Count(ctx context.Context) (int, error) {
	if m.FailWith != nil {
		return 0, m.FailWith
	}
	return len(m.Videos), nil
}

func (m *MockVideoRepository) SearchHits(ctx context.Context, q string, limit int) ([]models.VideoHit, error) {
	if m.SearchFail != nil {
		return nil, m.SearchFail
	}
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	q = strings.ToLower(q)
	hits := []models.VideoHit{}
	for _, v := range m.Videos {
		if strings.Contains(strings.ToLower(v.Title), q) ||
			strings.Contains(strings.ToLower(v.Description), q) {
			hits = append(hits, models.VideoHit{ID: v.ID, Title: v.Title, Slug: v.Slug, Excerpt: v.Description})
		}
	}
	return hits, nil
}

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	Categories     map[string]*models.Category
	SlugToCategory map[string]*models.Category
	FailWith       error
	SearchFail     error
}

func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		Categories:     make(map[string]*models.Category),
		SlugToCategory: make(map[string]*models.Category),
	}
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	m.Categories[category.ID] = category
	m.SlugToCategory[category.Slug] = category
	return nil
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *models.Category) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	m.Categories[category.ID] = category
	m.SlugToCategory[category.Slug] = category
	return nil
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	return m.Categories[id], nil
}

func (m *MockCategoryRepository) Exists(ctx context.Context, id string) (bool, error) {
	if m.FailWith != nil {
		return false, m.FailWith
	}
	_, exists := m.Categories[id]
	return exists, nil
}

func (m *MockCategoryRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	if m.FailWith != nil {
		return false, m.FailWith
	}
	_, exists := m.SlugToCategory[slug]
	return exists, nil
}

func (m *MockCategoryRepository) List(ctx context.Context, activeOnly bool) ([]*models.Category, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	var categories []*models.Category
	for _, c := range m.Categories {
		if activeOnly && !c.IsActive {
			continue
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func (m *MockCategoryRepository) Count(ctx context.Context) (int, error) {
	if m.FailWith != nil {
		return 0, m.FailWith
	}
	return len(m.Categories), nil
}

func (m *MockCategoryRepository) SearchHits(ctx context.Context, q string, limit int) ([]models.CategoryHit, error) {
	if m.SearchFail != nil {
		return nil, m.SearchFail
	}
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	q = strings.ToLower(q)
	hits := []models.CategoryHit{}
	for _, c := range m.Categories {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Description), q) {
			hits = append(hits, models.CategoryHit{ID: c.ID, Name: c.Name, Slug: c.Slug, Description: c.Description})
		}
	}
	return hits, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users       map[string]*models.User
	EmailToUser map[string]*models.User
	FailWith    error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users:       make(map[string]*models.User),
		EmailToUser: make(map[string]*models.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	m.Users[user.ID] = user
	m.EmailToUser[user.Email] = user
	return nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	m.Users[user.ID] = user
	m.EmailToUser[user.Email] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	return m.Users[id], nil
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	if m.FailWith != nil {
		return false, m.FailWith
	}
	_, exists := m.EmailToUser[email]
	return exists, nil
}

func (m *MockUserRepository) List(ctx context.Context) ([]*models.User, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	users := make([]*models.User, 0, len(m.Users))
	for _, u := range m.Users {
		users = append(users, u)
	}
	return users, nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	if m.FailWith != nil {
		return 0, m.FailWith
	}
	return len(m.Users), nil
}

// MockSubscriberRepository is a mock implementation of SubscriberRepository
type MockSubscriberRepository struct {
	Subscribers map[string]*models.Subscriber
	EmailToSub  map[string]*models.Subscriber
	FailWith    error
}

func NewMockSubscriberRepository() *MockSubscriberRepository {
	return &MockSubscriberRepository{
		Subscribers: make(map[string]*models.Subscriber),
		EmailToSub:  make(map[string]*models.Subscriber),
	}
}

func (m *MockSubscriberRepository) Create(ctx context.Context, sub *models.Subscriber) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	m.Subscribers[sub.ID] = sub
	m.EmailToSub[sub.Email] = sub
	return nil
}

func (m *MockSubscriberRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	if m.FailWith != nil {
		return false, m.FailWith
	}
	_, exists := m.EmailToSub[email]
	return exists, nil
}

func (m *MockSubscriberRepository) List(ctx context.Context) ([]*models.Subscriber, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	subs := make([]*models.Subscriber, 0, len(m.Subscribers))
	for _, s := range m.Subscribers {
		subs = append(subs, s)
	}
	return subs, nil
}

func (m *MockSubscriberRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	if m.FailWith != nil {
		return 0, m.FailWith
	}
	count := 0
	for _, s := range m.Subscribers {
		if s.Status == status {
			count++
		}
	}
	return count, nil
}

// MockStatsRepository is a mock implementation of StatsRepository backed by
// per-entity visitor sets, mirroring the counting tables. The mutex mirrors
// the store's atomic append-if-absent so concurrent callers are safe.
type MockStatsRepository struct {
	mu           sync.Mutex
	ArticleViews map[string]map[string]bool
	ArticleLikes map[string]map[string]bool
	VideoViews   map[string]map[string]bool
	FailWith     error
	Writes       int
}

func NewMockStatsRepository() *MockStatsRepository {
	return &MockStatsRepository{
		ArticleViews: make(map[string]map[string]bool),
		ArticleLikes: make(map[string]map[string]bool),
		VideoViews:   make(map[string]map[string]bool),
	}
}

func record(sets map[string]map[string]bool, entityID, visitorID string) bool {
	set, ok := sets[entityID]
	if !ok {
		set = make(map[string]bool)
		sets[entityID] = set
	}
	if set[visitorID] {
		return false
	}
	set[visitorID] = true
	return true
}

func (m *MockStatsRepository) RecordArticleView(ctx context.Context, articleID, visitorID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return false, m.FailWith
	}
	added := record(m.ArticleViews, articleID, visitorID)
	if added {
		m.Writes++
	}
	return added, nil
}

func (m *MockStatsRepository) RecordArticleLike(ctx context.Context, articleID, visitorID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return false, m.FailWith
	}
	added := record(m.ArticleLikes, articleID, visitorID)
	if added {
		m.Writes++
	}
	return added, nil
}

func (m *MockStatsRepository) RecordVideoView(ctx context.Context, videoID, visitorID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return false, m.FailWith
	}
	added := record(m.VideoViews, videoID, visitorID)
	if added {
		m.Writes++
	}
	return added, nil
}

func (m *MockStatsRepository) ArticleViewCount(ctx context.Context, articleID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return 0, m.FailWith
	}
	return len(m.ArticleViews[articleID]), nil
}

func (m *MockStatsRepository) ArticleLikeCount(ctx context.Context, articleID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return 0, m.FailWith
	}
	return len(m.ArticleLikes[articleID]), nil
}

func (m *MockStatsRepository) VideoViewCount(ctx context.Context, videoID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return 0, m.FailWith
	}
	return len(m.VideoViews[videoID]), nil
}

func (m *MockStatsRepository) TotalArticleViews(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return 0, m.FailWith
	}
	total := 0
	for _, set := range m.ArticleViews {
		total += len(set)
	}
	return total, nil
}

func (m *MockStatsRepository) TotalArticleLikes(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return 0, m.FailWith
	}
	total := 0
	for _, set := range m.ArticleLikes {
		total += len(set)
	}
	return total, nil
}

func (m *MockStatsRepository) TotalVideoViews(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return 0, m.FailWith
	}
	total := 0
	for _, set := range m.VideoViews {
		total += len(set)
	}
	return total, nil
}
