package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv         string
	LogLevel       string
	HTTPAddr       string
	MetricsAddr    string
	StoreBackend   string // file|redis|mysql
	DataDir        string
	UploadsDir     string
	MySQLDSN       string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	MaxUploadMB    int
	UploadRPS      int
	RequestTimeout time.Duration
	SeedSource     string
	SeedWorkers    int
	SeedRPS        int
}

// Load reads the environment, after applying a .env file if one exists.
// Variables already set in the environment win over .env entries.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not read .env file")
	}
	return fromEnv()
}

func fromEnv() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("not an integer, using default")
		}
		return def
	}
	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		LogLevel:       env("LOG_LEVEL", "info"),
		HTTPAddr:       env("HTTP_ADDR", ":8080"),
		MetricsAddr:    env("METRICS_ADDR", ""),
		StoreBackend:   env("STORE_BACKEND", "file"),
		DataDir:        env("DATA_DIR", "data/hotels"),
		UploadsDir:     env("UPLOADS_DIR", "uploads/images"),
		MySQLDSN:       env("MYSQL_DSN", "root:root@tcp(localhost:3306)/hotels?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:      env("REDIS_ADDR", "localhost:6379"),
		RedisPass:      env("REDIS_PASSWORD", ""),
		RedisDB:        atoi("REDIS_DB", 0),
		MaxUploadMB:    atoi("MAX_UPLOAD_MB", 32),
		UploadRPS:      atoi("UPLOAD_RPS", 10),
		RequestTimeout: time.Duration(atoi("REQUEST_TIMEOUT_SECONDS", 15)) * time.Second,
		SeedSource:     env("SEED_SOURCE", ""),
		SeedWorkers:    atoi("SEED_WORKERS", 4),
		SeedRPS:        atoi("SEED_RPS", 5),
	}
	switch c.StoreBackend {
	case "file", "redis", "mysql":
	default:
		log.Warn().Str("backend", c.StoreBackend).Msg("unknown STORE_BACKEND, using file")
		c.StoreBackend = "file"
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
