package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	DBPath             string
	ServerPort         string
	LogLevel           string
	RedisURL           string
	SettlementCacheTTL time.Duration
	CourseAPIURL       string
	CourseAPIKey       string
	HistoryConcurrency int
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	ttl, err := time.ParseDuration(getEnv("SETTLEMENT_CACHE_TTL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid SETTLEMENT_CACHE_TTL: %w", err)
	}
	concurrency, err := strconv.Atoi(getEnv("HISTORY_CONCURRENCY", "4"))
	if err != nil || concurrency < 1 {
		return nil, fmt.Errorf("HISTORY_CONCURRENCY must be a positive integer")
	}

	cfg := &Config{
		DBPath:             getEnv("DB_PATH", "golf.db"),
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		RedisURL:           getEnv("REDIS_URL", ""),
		SettlementCacheTTL: ttl,
		CourseAPIURL:       getEnv("COURSE_API_URL", ""),
		CourseAPIKey:       getEnv("COURSE_API_KEY", ""),
		HistoryConcurrency: concurrency,
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Bool("redis_cache", cfg.RedisURL != "").
		Dur("settlement_cache_ttl", cfg.SettlementCacheTTL).
		Str("course_api_url", cfg.CourseAPIURL).
		Int("history_concurrency", cfg.HistoryConcurrency).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)
