package cache

import (
	"context"
	"testing"
	"time"

	"golf-wager/internal/config"
	"golf-wager/internal/settlement"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNew_SelectsBackend(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	c, err := New(lc, &config.Config{}, zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, NopCache{}, c)

	c, err = New(lc, &config.Config{RedisURL: "redis://localhost:6379/2", SettlementCacheTTL: time.Minute}, zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, &RedisCache{}, c)

	_, err = New(lc, &config.Config{RedisURL: "mongodb://nope"}, zerolog.Nop())
	assert.Error(t, err)
}

func TestNopCache(t *testing.T) {
	ctx := context.Background()
	var c NopCache
	require.NoError(t, c.Set(ctx, "abc", &settlement.Result{MatchID: "m"}))
	got, ok, err := c.Get(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestRedisCache_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
	})
	defer client.Close()
	c := NewRedisCache(client, time.Minute)

	_, ok, err := c.Get(context.Background(), "abc")
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Error(t, c.Set(context.Background(), "abc", &settlement.Result{}))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "settlement:deadbeef", Key("deadbeef"))
}
