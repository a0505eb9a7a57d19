package metricsx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInstrumentedMux() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /products/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return HTTPMiddleware(mux)
}

func TestHTTPMiddlewareLabelsByRoutePattern(t *testing.T) {
	HTTPRequestsTotal.Reset()
	h := newInstrumentedMux()

	// Distinct ids on the same route must collapse into one series.
	for _, id := range []string{
		"01JF8AAAAAAAAAAAAAAAAAAAAA",
		"01JF8BBBBBBBBBBBBBBBBBBBBB",
		"01JF8CCCCCCCCCCCCCCCCCCCCC",
	} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/"+id, nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, 1, testutil.CollectAndCount(HTTPRequestsTotal))
	assert.Equal(t, float64(3), testutil.ToFloat64(
		HTTPRequestsTotal.WithLabelValues("GET", "/products/{id}", "200")))
}

func TestHTTPMiddlewareUnmatchedPathsShareOneLabel(t *testing.T) {
	HTTPRequestsTotal.Reset()
	h := newInstrumentedMux()

	// Scan traffic that matches no route must not mint per-path series.
	for _, path := range []string{"/wp-admin", "/.env", "/phpmyadmin"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
	}

	assert.Equal(t, 1, testutil.CollectAndCount(HTTPRequestsTotal))
	assert.Equal(t, float64(3), testutil.ToFloat64(
		HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestHTTPMiddlewareForwardsFlush(t *testing.T) {
	h := HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, ok := w.(http.Flusher)
		require.True(t, ok)
		f.Flush()
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))
	assert.True(t, rec.Flushed)
}
