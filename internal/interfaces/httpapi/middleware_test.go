package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/football-tournament/internal/platform/logging"
	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	handler := CORS([]string{"https://cup.example.com"}, okHandler())

	req := httptest.NewRequest(http.MethodGet, "/v1/standings", nil)
	req.Header.Set("Origin", "https://cup.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "https://cup.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Origin", rec.Header().Get("Vary"))
}

func TestCORS_OptionsPreflight(t *testing.T) {
	handler := CORS([]string{"*"}, okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/v1/admin/matches", nil)
	req.Header.Set("Origin", "https://cup.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_DisallowsUnconfiguredOrigin(t *testing.T) {
	handler := CORS([]string{"https://allowed.example.com"}, okHandler())

	req := httptest.NewRequest(http.MethodGet, "/v1/standings", nil)
	req.Header.Set("Origin", "https://not-allowed.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecoverPanic_WritesInternalError(t *testing.T) {
	handler := recoverPanic(logging.NewNop(), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/teams", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestRequestLogging_CapturesStatus(t *testing.T) {
	handler := RequestLogging(logging.NewNop(), http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/teams", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestClientLimiter_PerClientBuckets(t *testing.T) {
	limiter := NewClientLimiter(1, 2)
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.2"))

	now = now.Add(time.Second)
	assert.True(t, limiter.Allow("10.0.0.1"))
}

func TestClientLimiter_EvictsIdleClients(t *testing.T) {
	limiter := NewClientLimiter(1, 1)
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	limiter.Allow("10.0.0.1")
	now = now.Add(2 * limiterIdleTTL)
	limiter.Allow("10.0.0.2")

	assert.Len(t, limiter.clients, 1)
}

func TestClientLimiter_DisabledAndNil(t *testing.T) {
	var nilLimiter *ClientLimiter
	assert.True(t, nilLimiter.Allow("x"))

	disabled := NewClientLimiter(0, 1)
	for range 5 {
		assert.True(t, disabled.Allow("x"))
	}
}

func TestResolveClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.10:5555"
	assert.Equal(t, "192.0.2.10", resolveClientIP(req))

	req.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
	assert.Equal(t, "198.51.100.7", resolveClientIP(req))

	req.Header.Set("Fly-Client-IP", "not-an-ip")
	assert.Equal(t, "198.51.100.7", resolveClientIP(req))
}

func TestParseClientIP(t *testing.T) {
	cases := map[string]string{
		"203.0.113.5":          "203.0.113.5",
		"203.0.113.5:4431":     "203.0.113.5",
		"[2001:db8::1]:443":    "2001:db8::1",
		"::ffff:198.51.100.2":  "198.51.100.2",
		" 10.1.1.1 , 10.2.2.2": "10.1.1.1",
	}
	for raw, want := range cases {
		got, ok := parseClientIP(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, want, got, raw)
	}

	_, ok := parseClientIP("proxy.internal")
	assert.False(t, ok)
}
