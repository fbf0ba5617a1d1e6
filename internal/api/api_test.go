package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/faithboard/faithboard/internal/contract"
	"github.com/faithboard/faithboard/internal/dashboard"
	"github.com/faithboard/faithboard/internal/faith"
	"github.com/faithboard/faithboard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestServer(p *faith.MockStatsProvider) *Server {
	cfg := &contract.Config{View: schema.VersesView, Unit: schema.MinutesUnit}
	return NewServer(p, cfg, log.New(io.Discard))
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func sampleBible() schema.BibleStats {
	stats := schema.NewBibleStats()
	stats.OldTestament.AddBook(schema.BookStats{Book: "Genesis", MaturePassages: 1, MatureVerses: 3})
	stats.NewTestament.AddBook(schema.BookStats{Book: "John", YoungPassages: 2, YoungVerses: 5})
	return stats
}

func TestHealth(t *testing.T) {
	s := newTestServer(&faith.MockStatsProvider{})
	rec := get(t, s, "/health")

	require.Equal(t, http.StatusOK, rec.Code)
	var body schema.HealthCheck
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, schema.HealthCheck{Status: "ok", Service: ServiceName}, body)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestRequestIDIsKept(t *testing.T) {
	s := newTestServer(&faith.MockStatsProvider{})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestStatsEndpoints(t *testing.T) {
	p := &faith.MockStatsProvider{}
	p.On("BibleStats", mock.Anything).Return(sampleBible(), nil)
	p.On("AnkiToday", mock.Anything).Return(schema.TodayStats{Minutes: 30, Hours: 0.5}, nil)
	p.On("FaithToday", mock.Anything).Return(schema.FaithTodayStats{AnkiMinutes: 10, TotalMinutes: 10}, nil)
	p.On("TopPlaces", mock.Anything).Return([]schema.PlaceStats{{PlaceName: "Church", Hours: 4}}, nil)
	s := newTestServer(p)

	t.Run("bible", func(t *testing.T) {
		rec := get(t, s, "/api/bible")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		var got schema.BibleStats
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, int64(3), got.OldTestament.MatureVerses)
		assert.Equal(t, "John", got.NewTestament.Books[0].Book)
	})

	t.Run("today", func(t *testing.T) {
		rec := get(t, s, "/api/today")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"minutes":30,"hours":0.5}`, rec.Body.String())
	})

	t.Run("faith today", func(t *testing.T) {
		rec := get(t, s, "/api/faith/today")
		require.Equal(t, http.StatusOK, rec.Code)
		var got schema.FaithTodayStats
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.InDelta(t, 10, got.TotalMinutes, 1e-9)
	})

	t.Run("places", func(t *testing.T) {
		rec := get(t, s, "/api/places")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"place_name":"Church","hours":4}]`, rec.Body.String())
	})

	p.AssertExpectations(t)
}

func TestProviderErrorIs500(t *testing.T) {
	p := &faith.MockStatsProvider{}
	p.On("FaithDaily", mock.Anything).Return(schema.FaithDailyStats{}, errors.New("source mismatch: reading"))
	s := newTestServer(p)

	rec := get(t, s, "/api/faith/daily")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body schema.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "source mismatch: reading", body.Error)
}

func TestChartJSON(t *testing.T) {
	p := &faith.MockStatsProvider{}
	p.On("BibleStats", mock.Anything).Return(sampleBible(), nil)
	s := newTestServer(p)

	rec := get(t, s, "/api/charts/bible?view=passages")
	require.Equal(t, http.StatusOK, rec.Code)
	var got dashboard.ChartJS
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "bar", got.Type)
	assert.Equal(t, []string{"Genesis", "John"}, got.Data.Labels)
	require.Len(t, got.Data.Datasets, len(schema.ChartTiers))
}

func TestChartPNG(t *testing.T) {
	p := &faith.MockStatsProvider{}
	p.On("BibleStats", mock.Anything).Return(sampleBible(), nil)
	p.On("ChurchWeeks", mock.Anything).Return([]schema.ChurchWeekStats{}, nil)
	s := newTestServer(p)

	rec := get(t, s, "/api/charts/bible.png")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))

	rec = get(t, s, "/api/charts/church.png")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestChartBadRequests(t *testing.T) {
	s := newTestServer(&faith.MockStatsProvider{})
	tests := []struct {
		path string
		want string
	}{
		{"/api/charts/pie", "unknown chart 'pie'"},
		{"/api/charts/bible?view=chapters", "invalid view 'chapters'"},
		{"/api/charts/daily?unit=days", "invalid unit 'days'"},
		{"/api/charts/daily?hide_empty=maybe", "invalid hide_empty 'maybe'"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(t, s, tt.path)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			var body schema.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Contains(t, body.Error, tt.want)
		})
	}
}

func TestNotFound(t *testing.T) {
	s := newTestServer(&faith.MockStatsProvider{})
	rec := get(t, s, "/api/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "no route for /api/nope")
}

func TestMetrics(t *testing.T) {
	s := newTestServer(&faith.MockStatsProvider{})
	get(t, s, "/health")

	rec := get(t, s, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `faithboard_http_requests_total{method="GET",route="/health",status="200"} 1`)
	assert.Contains(t, body, "faithboard_http_request_duration_seconds")
}

func TestRateLimit(t *testing.T) {
	limiter := NewIPRateLimiter(0, 1)
	h := rateLimit(limiter)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	assert.Equal(t, http.StatusOK, get(t, h, "/").Code)
	rec := get(t, h, "/")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "Too Many Requests")
}

func TestIPRateLimiterPerClient(t *testing.T) {
	limiter := NewIPRateLimiter(1, 1)
	a := limiter.GetLimiter("10.0.0.1")
	assert.Same(t, a, limiter.GetLimiter("10.0.0.1"))
	assert.NotSame(t, a, limiter.GetLimiter("10.0.0.2"))
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.7:5555"
	assert.Equal(t, "192.0.2.7", clientIP(req))
	req.RemoteAddr = "unix"
	assert.Equal(t, "unix", clientIP(req))
}
