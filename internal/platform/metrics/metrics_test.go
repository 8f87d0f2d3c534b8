package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_CountsByRoutePattern(t *testing.T) {
	m := New("test")

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/api/puppies/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"1", "2", "3"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/puppies/"+id, nil))
	}

	got := testutil.ToFloat64(m.requests.WithLabelValues("/api/puppies/{id}", http.MethodGet, "404"))
	require.Equal(t, float64(3), got)
}

func TestHandler_ExposesRegistry(t *testing.T) {
	m := New("test")
	m.requests.WithLabelValues("/", http.MethodGet, "200").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "test_http_requests_total")
	require.Contains(t, rec.Body.String(), "go_goroutines")
}
