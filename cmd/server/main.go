package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/news-cms-api/internal/api"
	"github.com/news-cms-api/internal/cache"
	"github.com/news-cms-api/internal/config"
	"github.com/news-cms-api/internal/database"
	"github.com/news-cms-api/internal/repository"
	"github.com/news-cms-api/internal/service"
	"github.com/news-cms-api/pkg/logger"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting news CMS API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize database
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Run migrations
	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}
	if err := db.RunMigrations(migrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Initialize repositories
	repos := repository.New(db)

	// Initialize response cache: redis when configured, in-process otherwise
	var responseCache cache.Cache
	if cfg.Cache.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Cache.RedisAddr})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("Redis ping failed, cache reads will miss until it recovers")
		}
		cancel()
		responseCache = cache.NewRedis(rdb, cfg.Cache.StalenessWindow, log)
		log.Info().Str("addr", cfg.Cache.RedisAddr).Msg("Using redis response cache")
	} else {
		responseCache = cache.NewMemory(cfg.Cache.StalenessWindow)
		log.Info().Dur("staleness_window", cfg.Cache.StalenessWindow).Msg("Using in-process response cache")
	}

	// Initialize services
	services := service.NewServices(repos, responseCache, log)

	// Initialize router
	router := api.NewRouter(services, cfg, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
