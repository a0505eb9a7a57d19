package slogx

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMiddlewareAttachesContextLogger(t *testing.T) {
	base := slog.New(slog.NewTextHandler(io.Discard, nil))

	var got *slog.Logger
	h := HTTPMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))

	require.NotNil(t, got)
	assert.NotEqual(t, slog.Default(), got, "handler must see the request-scoped logger")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHTTPMiddlewareForwardsFlush(t *testing.T) {
	base := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := HTTPMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, ok := w.(http.Flusher)
		require.True(t, ok)
		f.Flush()
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))
	assert.True(t, rec.Flushed)
}
