package config

import (
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, key := range []string{"DB_PATH", "SERVER_PORT", "LOG_LEVEL", "REDIS_URL", "SETTLEMENT_CACHE_TTL", "COURSE_API_URL", "COURSE_API_KEY", "HISTORY_CONCURRENCY"} {
		t.Setenv(key, "")
	}

	cfg, err := Load(zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "golf.db", cfg.DBPath)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 10*time.Minute, cfg.SettlementCacheTTL)
	assert.Equal(t, 4, cfg.HistoryConcurrency)
	assert.Empty(t, cfg.RedisURL)
}

func TestLoad_Overrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DB_PATH", "/tmp/x.db")
	t.Setenv("SETTLEMENT_CACHE_TTL", "30s")
	t.Setenv("HISTORY_CONCURRENCY", "8")
	t.Setenv("COURSE_API_URL", "http://courses.local")

	cfg, err := Load(zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, 30*time.Second, cfg.SettlementCacheTTL)
	assert.Equal(t, 8, cfg.HistoryConcurrency)
	assert.Equal(t, "http://courses.local", cfg.CourseAPIURL)
}

func TestLoad_Invalid(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HISTORY_CONCURRENCY", "0")
	_, err := Load(zerolog.Nop())
	require.Error(t, err)

	t.Setenv("HISTORY_CONCURRENCY", "")
	t.Setenv("SETTLEMENT_CACHE_TTL", "soon")
	_, err = Load(zerolog.Nop())
	require.Error(t, err)
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })
}
