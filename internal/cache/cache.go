package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golf-wager/internal/config"
	"golf-wager/internal/settlement"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// SettlementCache stores settlement results by snapshot fingerprint. A
// fingerprint changes whenever any input changes, so entries never go stale.
type SettlementCache interface {
	Get(ctx context.Context, fingerprint string) (*settlement.Result, bool, error)
	Set(ctx context.Context, fingerprint string, result *settlement.Result) error
}

func New(lc fx.Lifecycle, cfg *config.Config, logger zerolog.Logger) (SettlementCache, error) {
	if cfg.RedisURL == "" {
		logger.Info().Msg("REDIS_URL not set, settlement cache disabled")
		return NopCache{}, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	logger.Info().Str("addr", opts.Addr).Dur("ttl", cfg.SettlementCacheTTL).Msg("settlement cache using redis")
	return NewRedisCache(client, cfg.SettlementCacheTTL), nil
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func Key(fingerprint string) string {
	return "settlement:" + fingerprint
}

func (c *RedisCache) Get(ctx context.Context, fingerprint string) (*settlement.Result, bool, error) {
	data, err := c.client.Get(ctx, Key(fingerprint)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var res settlement.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, false, fmt.Errorf("unmarshaling settlement: %w", err)
	}
	return &res, true, nil
}

func (c *RedisCache) Set(ctx context.Context, fingerprint string, result *settlement.Result) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshaling settlement: %w", err)
	}
	return c.client.Set(ctx, Key(fingerprint), data, c.ttl).Err()
}

type NopCache struct{}

func (NopCache) Get(context.Context, string) (*settlement.Result, bool, error) {
	return nil, false, nil
}

func (NopCache) Set(context.Context, string, *settlement.Result) error {
	return nil
}
