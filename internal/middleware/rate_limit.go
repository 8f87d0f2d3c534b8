package middleware

import (
	"net/http"

	"bordoodles-api/internal/platform/httpjson"

	"golang.org/x/time/rate"
)

// RateLimit corta con 429 cuando el token bucket está vacío.
// Con limiter nil no limita.
func RateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				httpjson.Error(w, http.StatusTooManyRequests, "Too Many Requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
