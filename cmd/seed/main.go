package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/discoverguadeloupe/backend/internal/adapters/database"
	"github.com/discoverguadeloupe/backend/internal/data"
	"github.com/discoverguadeloupe/backend/internal/infrastructure/clients/postgres"
	"github.com/discoverguadeloupe/backend/internal/infrastructure/observability"
	"github.com/discoverguadeloupe/backend/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger("discover-guadeloupe-seed", cfg.Env)

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pgClient.Close()

	ctx := context.Background()
	siteRepo := database.NewSiteAdapter(pgClient)
	sites := data.DefaultSites()

	if os.Getenv("RESET_DB") == "true" {
		log.Info().Msg("RESET_DB=true detected, replacing all site data")
		if err := siteRepo.ResetAll(ctx, sites); err != nil {
			log.Fatal().Err(err).Msg("reset failed")
		}
		log.Info().Int("count", len(sites)).Msg("seeded site catalog")
		return
	}

	existing, err := siteRepo.GetAll(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to inspect sites table")
	}
	if len(existing) > 0 {
		log.Info().Int("count", len(existing)).Msg("sites table already populated, skipping seed (set RESET_DB=true to replace)")
		return
	}

	for _, site := range sites {
		if err := siteRepo.Create(ctx, site); err != nil {
			log.Fatal().Err(err).Str("id", site.ID).Msg("failed to insert site")
		}
	}
	log.Info().Int("count", len(sites)).Msg("seeded site catalog")
}
