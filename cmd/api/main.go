package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/discoverguadeloupe/backend/internal/adapters/cache"
	"github.com/discoverguadeloupe/backend/internal/adapters/database"
	"github.com/discoverguadeloupe/backend/internal/api/handlers"
	"github.com/discoverguadeloupe/backend/internal/api/routes"
	"github.com/discoverguadeloupe/backend/internal/domain/repositories"
	"github.com/discoverguadeloupe/backend/internal/infrastructure/clients/postgres"
	"github.com/discoverguadeloupe/backend/internal/infrastructure/clients/redis"
	"github.com/discoverguadeloupe/backend/internal/infrastructure/observability"
	"github.com/discoverguadeloupe/backend/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger("discover-guadeloupe-api", cfg.Env)

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()
	log.Info().Msg("PostgreSQL client initialized")

	// Redis is optional, the API serves directly from Postgres without it
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, running without cache")
	} else {
		defer redisClient.Close()
		log.Info().Msg("Redis client initialized")
	}

	baseSiteAdapter := database.NewSiteAdapter(pgClient)

	var siteRepo repositories.SiteRepository = baseSiteAdapter
	if redisClient != nil {
		cacheProvider := cache.NewRedisAdapter(redisClient)
		siteRepo = database.NewCachedSiteAdapter(baseSiteAdapter, cacheProvider)
		log.Info().Msg("site adapter wrapped with caching layer")
	}

	siteHandler := handlers.NewSiteHandler(siteRepo)
	router := routes.NewRouter(siteHandler, cfg.Server.AllowedOrigins)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	log.Info().Msg("server stopped")
}
