// Package storage picks the HotelStore backend named by the config.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"hotel_records/internal/domain"
	"hotel_records/internal/shared"
	"hotel_records/internal/storage/filestore"
	mysqlrepo "hotel_records/internal/storage/mysql"
	redisstore "hotel_records/internal/storage/redis"
)

// Open returns the configured store and a function releasing its resources.
func Open(ctx context.Context, cfg shared.Config) (domain.HotelStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StoreBackend {
	case "redis":
		s := redisstore.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := s.Ping(ctx); err != nil {
			_ = s.Close()
			return nil, noop, fmt.Errorf("redis ping: %w", err)
		}
		log.Info().Str("backend", "redis").Str("addr", cfg.RedisAddr).Msg("record store ready")
		return s, s.Close, nil

	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			return nil, noop, fmt.Errorf("sql.Open: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, noop, fmt.Errorf("db.Ping: %w", err)
		}
		log.Info().Str("backend", "mysql").Msg("record store ready")
		return mysqlrepo.New(db), db.Close, nil

	default:
		log.Info().Str("backend", "file").Str("dir", cfg.DataDir).Msg("record store ready")
		return filestore.New(cfg.DataDir), noop, nil
	}
}
