package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/discoverguadeloupe/backend/internal/infrastructure/clients/postgres"
	"github.com/discoverguadeloupe/backend/internal/infrastructure/observability"
	"github.com/discoverguadeloupe/backend/migrations"
	"github.com/discoverguadeloupe/backend/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger("discover-guadeloupe-migrate", cfg.Env)

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pgClient.Close()

	applied, err := migrations.Apply(context.Background(), pgClient.DB())
	for _, name := range applied {
		log.Info().Str("migration", name).Msg("applied")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	log.Info().Msg("all migrations applied")
}
