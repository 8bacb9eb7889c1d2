package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/news-cms-api/internal/models"
	"github.com/news-cms-api/internal/service"
	"github.com/rs/zerolog"
)

// ContentHandler handles article, video and category endpoints
type ContentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(services *service.Services, log zerolog.Logger) *ContentHandler {
	return &ContentHandler{
		services: services,
		log:      log.With().Str("handler", "content").Logger(),
	}
}

// Articles

// ListPublishedArticles handles GET /v1/articles
func (h *ContentHandler) ListPublishedArticles(c *gin.Context) {
	filter := models.ArticleFilter{
		Status:     "published",
		CategoryID: c.Query("category_id"),
		Page:       parseIntQuery(c, "page", 1),
		Limit:      parseIntQuery(c, "limit", 20),
	}
	if c.Query("breaking") == "true" {
		breaking := true
		filter.Breaking = &breaking
	}

	articles, err := h.services.Content.ListArticles(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, articles)
}

// GetArticle handles GET /v1/articles/:id. The path segment is either an
// article id or, for public permalinks, a slug.
func (h *ContentHandler) GetArticle(c *gin.Context) {
	ref := c.Param("id")

	var article *models.Article
	var err error
	if _, parseErr := uuid.Parse(ref); parseErr == nil {
		article, err = h.services.Content.GetArticle(c.Request.Context(), ref)
	} else {
		article, err = h.services.Content.GetArticleBySlug(c.Request.Context(), ref)
	}
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, article)
}

// ListArticles handles GET /v1/dashboard/articles
func (h *ContentHandler) ListArticles(c *gin.Context) {
	filter := models.ArticleFilter{
		Status:     c.Query("status"),
		CategoryID: c.Query("category_id"),
		Page:       parseIntQuery(c, "page", 1),
		Limit:      parseIntQuery(c, "limit", 20),
	}

	articles, err := h.services.Content.ListArticles(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, articles)
}

// CreateArticle handles POST /v1/dashboard/articles
func (h *ContentHandler) CreateArticle(c *gin.Context) {
	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	article, err := h.services.Content.CreateArticle(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusCreated, article)
}

// UpdateArticle handles PATCH /v1/dashboard/articles/:id
func (h *ContentHandler) UpdateArticle(c *gin.Context) {
	var req models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	article, err := h.services.Content.UpdateArticle(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, article)
}

// Videos

// ListPublishedVideos handles GET /v1/videos
func (h *ContentHandler) ListPublishedVideos(c *gin.Context) {
	filter := models.VideoFilter{
		Status: "published",
		Page:   parseIntQuery(c, "page", 1),
		Limit:  parseIntQuery(c, "limit", 20),
	}

	videos, err := h.services.Content.ListVideos(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, videos)
}

// GetVideo handles GET /v1/videos/:id
func (h *ContentHandler) GetVideo(c *gin.Context) {
	video, err := h.services.Content.GetVideo(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, video)
}

// ListVideos handles GET /v1/dashboard/videos
func (h *ContentHandler) ListVideos(c *gin.Context) {
	filter := models.VideoFilter{
		Status: c.Query("status"),
		Page:   parseIntQuery(c, "page", 1),
		Limit:  parseIntQuery(c, "limit", 20),
	}

	videos, err := h.services.Content.ListVideos(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, videos)
}

// CreateVideo handles POST /v1/dashboard/videos
func (h *ContentHandler) CreateVideo(c *gin.Context) {
	var req models.CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	video, err := h.services.Content.CreateVideo(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusCreated, video)
}

// UpdateVideo handles PATCH /v1/dashboard/videos/:id
func (h *ContentHandler) UpdateVideo(c *gin.Context) {
	var req models.UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	video, err := h.services.Content.UpdateVideo(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, video)
}

// Categories

// ListActiveCategories handles GET /v1/categories
func (h *ContentHandler) ListActiveCategories(c *gin.Context) {
	categories, err := h.services.Content.ListCategories(c.Request.Context(), true)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, categories)
}

// ListCategories handles GET /v1/dashboard/categories
func (h *ContentHandler) ListCategories(c *gin.Context) {
	categories, err := h.services.Content.ListCategories(c.Request.Context(), false)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, categories)
}

// CreateCategory handles POST /v1/dashboard/categories
func (h *ContentHandler) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	category, err := h.services.Content.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusCreated, category)
}

// UpdateCategory handles PATCH /v1/dashboard/categories/:id
func (h *ContentHandler) UpdateCategory(c *gin.Context) {
	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	category, err := h.services.Content.UpdateCategory(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, category)
}
