package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravadigital/turnier-api/internal/config"
	"github.com/gravadigital/turnier-api/internal/metrics"
	"github.com/gravadigital/turnier-api/internal/middleware/requestlog"
	"github.com/gravadigital/turnier-api/internal/services"
	"github.com/gravadigital/turnier-api/internal/storage"
)

func newTestServer(t *testing.T, mutate func(*config.Config)) http.Handler {
	t.Helper()
	cfg := config.Default()
	cfg.Server.GinMode = gin.TestMode
	if mutate != nil {
		mutate(cfg)
	}
	m := metrics.New()
	session := services.NewSession(m)
	ts := services.NewTournamentService(session, storage.NewMemoryStore(), m, cfg.Storage.SnapshotPath)
	return New(cfg, ts, services.NewFencerService(session), m).Handler()
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPing(t *testing.T) {
	h := newTestServer(t, nil)

	rec := serve(h, http.MethodGet, "/ping", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
	assert.NotEmpty(t, rec.Header().Get(requestlog.HeaderRequestID))
}

func TestMetricsEndpointCountsOperations(t *testing.T) {
	h := newTestServer(t, nil)

	rec := serve(h, http.MethodPost, "/api/tournament", `{"name":"Cup"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = serve(h, http.MethodPost, "/api/days", `{"date":"2026-09-12","number_time_slots":1,"number_arenas":1}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `turnier_operations_total{operation="add_day",outcome="ok"} 1`)
}

func TestMetricsCanBeDisabled(t *testing.T) {
	h := newTestServer(t, func(cfg *config.Config) { cfg.Metrics.Enabled = false })

	rec := serve(h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	h := newTestServer(t, func(cfg *config.Config) { cfg.CORS.AllowOrigins = "http://localhost:3000" })

	req := httptest.NewRequest(http.MethodOptions, "/api/days", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
