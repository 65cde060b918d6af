package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	httpserver "hotel_records/internal/adapters/http_server"
	"hotel_records/internal/adapters/observability"
	"hotel_records/internal/adapters/uploads"
	"hotel_records/internal/app"
	"hotel_records/internal/shared"
	"hotel_records/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	store, closeStore, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StoreBackend).Msg("open record store failed")
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn().Err(err).Msg("close record store failed")
		}
	}()

	hotels := app.NewHotelService(store)
	images := app.NewImageService(store, uploads.NewLocal(cfg.UploadsDir))

	srv := httpserver.New(cfg.RequestTimeout)
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountUploads(app.PublicImagePath, cfg.UploadsDir)
	srv.MountHandlers(&httpserver.Handlers{
		Hotels:         hotels,
		Images:         images,
		MaxUploadBytes: int64(cfg.MaxUploadMB) << 20,
		UploadRPS:      cfg.UploadRPS,
	})

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Mux(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("http shutdown failed")
		}
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Str("backend", cfg.StoreBackend).Msg("API listening")
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("API stopped")
}
