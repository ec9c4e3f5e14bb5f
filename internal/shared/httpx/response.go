// Package httpx holds the JSON and problem+json writers shared by every
// service's delivery layer.
package httpx

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"go-shortlink/pkg/problemdetails"
)

// WriteJSON writes data as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteProblem writes an RFC 7807 Problem Details response.
func WriteProblem(w http.ResponseWriter, problem *problemdetails.ProblemDetail) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(problem.Status)
	json.NewEncoder(w).Encode(problem)
}

// HealthResponse is the body of the liveness and readiness probes.
type HealthResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// Check reports whether a dependency is usable.
type Check func(ctx context.Context) error

// Healthz handles GET /healthz (liveness probe).
func Healthz(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Readyz handles GET /readyz (readiness probe). Each check gets two seconds.
func Readyz(checks ...Check) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		for _, check := range checks {
			if err := check(ctx); err != nil {
				WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{
					Status: "unavailable",
					Reason: err.Error(),
				})
				return
			}
		}
		WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// ClientIP returns the caller's address without the port. It relies on
// chi's RealIP middleware having rewritten RemoteAddr from proxy headers.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
