package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"hotel_records/internal/adapters/observability"
	"hotel_records/internal/adapters/seedsource"
	"hotel_records/internal/app"
	"hotel_records/internal/shared"
	"hotel_records/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	if cfg.SeedSource == "" {
		log.Fatal().Msg("SEED_SOURCE is empty")
	}
	log.Info().
		Str("source", cfg.SeedSource).
		Str("backend", cfg.StoreBackend).
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	inputs, err := seedsource.New(cfg.SeedRPS).Load(ctx, cfg.SeedSource)
	if err != nil {
		log.Fatal().Err(err).Msg("load seed source failed")
	}

	store, closeStore, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("open record store failed")
	}
	defer closeStore()

	res, err := app.NewHotelService(store).CreateMany(ctx, inputs, cfg.SeedWorkers)
	if err != nil {
		log.Error().Err(err).Int("created", res.Created).Msg("seeding interrupted")
		return
	}
	log.Info().Int("created", res.Created).Int("failed", res.Failed).Msg("seeding completed")
}
