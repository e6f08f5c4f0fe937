package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"SawitFeed/internal/domain/models"
	"SawitFeed/internal/domain/repository"
	scache "SawitFeed/internal/service/cache"
	"SawitFeed/internal/usecase"
	"SawitFeed/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type nopMetrics struct{}

func (nopMetrics) RecordFetch(string)              {}
func (nopMetrics) RecordFetchError(string)         {}
func (nopMetrics) RecordQuotes(string, int)        {}
func (nopMetrics) RecordCacheHit()                 {}
func (nopMetrics) RecordCacheMiss()                {}
func (nopMetrics) RecordFallback()                 {}
func (nopMetrics) RecordLastPrice(string, float64) {}
func (nopMetrics) RecordCycleDuration(float64)     {}

// Without configured sources every cycle substitutes the fallback set,
// which is exactly what these handler tests need.
func newTestHandler(t *testing.T) *PricesEchoHandler {
	t.Helper()
	log, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"})
	require.NoError(t, err)

	collector := usecase.NewCollector(nil, nopMetrics{}, log, time.Second, 1)
	synth := usecase.NewSynthesizer(6, nil)
	cache := scache.NewSnapshotCache(5*time.Minute, nopMetrics{})
	svc := usecase.NewPriceService(collector, synth, cache, nil, nopMetrics{}, log, 500, 5000)
	return NewPricesEchoHandler(log, svc)
}

func doRequest(t *testing.T, h *PricesEchoHandler, target string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	h.RegisterRoutes(e)
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

type snapshotEnvelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Current    []models.Quote `json:"current"`
		Historical []models.Quote `json:"historical"`
	} `json:"data"`
}

func TestPricesEndpoint(t *testing.T) {
	rec := doRequest(t, newTestHandler(t), "/api/prices")
	require.Equal(t, http.StatusOK, rec.Code)

	var env snapshotEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, http.StatusOK, env.Status)
	require.Len(t, env.Data.Current, 4)
	require.Len(t, env.Data.Historical, 4*6*30)
	for _, q := range env.Data.Current {
		require.Equal(t, models.SourceFallback, q.Source)
		require.Positive(t, q.Price)
	}
}

func TestFallbackEndpoint(t *testing.T) {
	rec := doRequest(t, newTestHandler(t), "/api/prices/fallback")
	require.Equal(t, http.StatusOK, rec.Code)

	var env snapshotEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Len(t, env.Data.Current, 4)
	require.Len(t, env.Data.Historical, 4*6*30)
}

func TestFallbackEndpointMonthsParam(t *testing.T) {
	rec := doRequest(t, newTestHandler(t), "/api/prices/fallback?months=2")
	require.Equal(t, http.StatusOK, rec.Code)

	var env snapshotEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Len(t, env.Data.Historical, 4*2*30)
}

func TestFallbackEndpointRejectsBadMonths(t *testing.T) {
	rec := doRequest(t, newTestHandler(t), "/api/prices/fallback?months=48")
	require.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Status int `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, http.StatusBadRequest, env.Status)
}

func TestHealthEndpoint(t *testing.T) {
	rec := doRequest(t, newTestHandler(t), "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

var _ repository.Metrics = nopMetrics{}
