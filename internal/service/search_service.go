package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/news-cms-api/internal/cache"
	"github.com/news-cms-api/internal/models"
	"github.com/news-cms-api/internal/repository"
	"github.com/rs/zerolog"
)

// keyPrefixSearch namespaces cached search payloads
const keyPrefixSearch = "search:"

const searchLimit = 20

// searchService is the concrete implementation of SearchService
type searchService struct {
	repos *repository.Repositories
	cache cache.Cache
	log   zerolog.Logger
}

// newSearchService creates a new SearchService
func newSearchService(repos *repository.Repositories, c cache.Cache, log zerolog.Logger) *searchService {
	return &searchService{
		repos: repos,
		cache: c,
		log:   log.With().Str("service", "search").Logger(),
	}
}

// Search fans the query out across articles, videos and categories and
// merges the results. An empty query short-circuits to empty lists without
// touching the store. One sub-query failing does not abort the other two;
// only when all three fail is an error surfaced.
func (s *searchService) Search(ctx context.Context, q string) (*models.SearchResults, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return &models.SearchResults{
			Articles:   []models.ArticleHit{},
			Videos:     []models.VideoHit{},
			Categories: []models.CategoryHit{},
		}, nil
	}

	key := keyPrefixSearch + "q=" + strings.ToLower(q)
	if data, ok := s.cache.Get(ctx, key); ok {
		var cached models.SearchResults
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	var (
		wg         sync.WaitGroup
		articles   []models.ArticleHit
		videos     []models.VideoHit
		categories []models.CategoryHit
		errs       [3]error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		articles, errs[0] = s.repos.Article.SearchHits(ctx, q, searchLimit)
	}()
	go func() {
		defer wg.Done()
		videos, errs[1] = s.repos.Video.SearchHits(ctx, q, searchLimit)
	}()
	go func() {
		defer wg.Done()
		categories, errs[2] = s.repos.Category.SearchHits(ctx, q, searchLimit)
	}()
	wg.Wait()

	failed := 0
	for i, err := range errs {
		if err != nil {
			failed++
			collection := [3]string{"articles", "videos", "categories"}[i]
			s.log.Error().Err(err).Str("collection", collection).Str("query", q).Msg("Sub-query failed")
		}
	}
	if failed == len(errs) {
		return nil, fmt.Errorf("search %q: all collections failed", q)
	}

	if articles == nil {
		articles = []models.ArticleHit{}
	}
	if videos == nil {
		videos = []models.VideoHit{}
	}
	if categories == nil {
		categories = []models.CategoryHit{}
	}

	results := &models.SearchResults{
		Articles:   articles,
		Videos:     videos,
		Categories: categories,
	}

	// Only complete results are cached; a partial payload would outlive the
	// transient failure that produced it.
	if failed == 0 {
		if data, err := json.Marshal(results); err == nil {
			s.cache.Set(ctx, key, data)
		}
	}

	return results, nil
}
