package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-shortlink/internal/shared/middleware"
	"go-shortlink/pkg/problemdetails"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func send(h http.Handler, remote string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/shorten", nil)
	req.RemoteAddr = remote
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// TestRateLimiter_WithinLimit_Returns200 verifies requests within limit succeed
func TestRateLimiter_WithinLimit_Returns200(t *testing.T) {
	rl := middleware.NewRateLimiter(100)
	defer rl.Stop()
	h := rl.Middleware(okHandler())

	for i := 0; i < 5; i++ {
		rr := send(h, "192.168.1.1:12345")
		assert.Equal(t, http.StatusOK, rr.Code, "request %d", i+1)
		assert.Equal(t, "100", rr.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, rr.Header().Get("X-RateLimit-Remaining"))
	}
}

// TestRateLimiter_ExceedsLimit_Returns429 verifies the problem body and headers
func TestRateLimiter_ExceedsLimit_Returns429(t *testing.T) {
	rl := middleware.NewRateLimiter(2)
	defer rl.Stop()
	h := rl.Middleware(okHandler())

	send(h, "192.168.1.1:1111")
	send(h, "192.168.1.1:2222")
	rr := send(h, "192.168.1.1:3333")

	require.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))
	assert.Equal(t, "0", rr.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rr.Header().Get("X-RateLimit-Reset"))

	var problem problemdetails.ProblemDetail
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&problem))
	assert.Equal(t, http.StatusTooManyRequests, problem.Status)
	assert.Contains(t, problem.Type, "rate-limit-exceeded")
}

// TestRateLimiter_DifferentIPs_IndependentLimits verifies per-IP isolation
func TestRateLimiter_DifferentIPs_IndependentLimits(t *testing.T) {
	rl := middleware.NewRateLimiter(1)
	defer rl.Stop()
	h := rl.Middleware(okHandler())

	assert.Equal(t, http.StatusOK, send(h, "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusOK, send(h, "10.0.0.2:5678").Code)
	assert.Equal(t, http.StatusTooManyRequests, send(h, "10.0.0.1:9999").Code)
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := middleware.NewRateLimiter(1)
	rl.Stop()
	rl.Stop()
}
