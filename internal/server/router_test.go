package server

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"golf-wager/internal/database"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_Healthz(t *testing.T) {
	sqlDB, err := database.Open(filepath.Join(t.TempDir(), "health.db"), zerolog.Nop())
	require.NoError(t, err)

	h := NewRouter(&WagerServer{}, sqlDB, zerolog.Nop())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	require.NoError(t, sqlDB.Close())
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_Preflight(t *testing.T) {
	sqlDB, err := database.Open(filepath.Join(t.TempDir(), "cors.db"), zerolog.Nop())
	require.NoError(t, err)
	defer sqlDB.Close()

	h := NewRouter(&WagerServer{}, sqlDB, zerolog.Nop())

	req := httptest.NewRequest(http.MethodOptions, WagerServicePath+"SettleMatch", nil)
	req.Header.Set("Origin", "http://scorecard.local")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.True(t, strings.Contains(rec.Header().Get("Access-Control-Allow-Methods"), "POST"))
}
