package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/news-cms-api/internal/config"
	"github.com/news-cms-api/internal/service"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	statsHandler := NewStatsHandler(services, log)
	contentHandler := NewContentHandler(services, log)
	dashboardHandler := NewDashboardHandler(services, log)
	accountHandler := NewAccountHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)

	// API v1, public surface
	v1 := router.Group("/v1")
	{
		articles := v1.Group("/articles")
		{
			articles.GET("", contentHandler.ListPublishedArticles)
			articles.GET("/:id", contentHandler.GetArticle)
			articles.POST("/:id/stats", statsHandler.PostArticleStats)
			articles.GET("/:id/stats", statsHandler.GetArticleStats)
		}

		videos := v1.Group("/videos")
		{
			videos.GET("", contentHandler.ListPublishedVideos)
			videos.GET("/:id", contentHandler.GetVideo)
			videos.POST("/:id/stats", statsHandler.PostVideoStats)
			videos.GET("/:id/stats", statsHandler.GetVideoStats)
		}

		v1.GET("/categories", contentHandler.ListActiveCategories)
		v1.POST("/subscribers", accountHandler.Subscribe)
	}

	// Dashboard surface, role-gated server-side. The X-User-ID caller
	// identity is resolved against the user store on every request.
	dashboard := v1.Group("/dashboard")
	{
		editorial := dashboard.Group("", requireRole(services.Account, log, "admin", "editor", "author"))
		{
			editorial.GET("/stats", dashboardHandler.Stats)
			editorial.GET("/search", dashboardHandler.Search)

			editorial.GET("/articles", contentHandler.ListArticles)
			editorial.POST("/articles", contentHandler.CreateArticle)
			editorial.PATCH("/articles/:id", contentHandler.UpdateArticle)

			editorial.GET("/videos", contentHandler.ListVideos)
			editorial.POST("/videos", contentHandler.CreateVideo)
			editorial.PATCH("/videos/:id", contentHandler.UpdateVideo)
		}

		editors := dashboard.Group("", requireRole(services.Account, log, "admin", "editor"))
		{
			editors.GET("/categories", contentHandler.ListCategories)
			editors.POST("/categories", contentHandler.CreateCategory)
			editors.PATCH("/categories/:id", contentHandler.UpdateCategory)
		}

		admins := dashboard.Group("", requireRole(services.Account, log, "admin"))
		{
			admins.GET("/users", accountHandler.ListUsers)
			admins.POST("/users", accountHandler.CreateUser)
			admins.PATCH("/users/:id", accountHandler.UpdateUser)
			admins.GET("/subscribers", accountHandler.ListSubscribers)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "news-cms-api",
	})
}

// requireRole enforces dashboard authorization at the API boundary
func requireRole(accounts service.AccountService, log zerolog.Logger, roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			respondError(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}

		user, err := accounts.GetUser(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				respondError(c, http.StatusUnauthorized, "unknown user")
			} else {
				log.Error().Err(err).Str("user_id", userID).Msg("Auth lookup failed")
				respondError(c, http.StatusInternalServerError, "internal server error")
			}
			c.Abort()
			return
		}
		if !user.Active {
			respondError(c, http.StatusUnauthorized, "user is inactive")
			c.Abort()
			return
		}
		if !allowed[user.Role] {
			respondError(c, http.StatusForbidden, "insufficient role")
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				respondError(c, http.StatusInternalServerError, "internal server error")
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-User-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
