package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestEnsureRequestID_KeepsClientID(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("X-Request-Id")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "client-id")
	rec := httptest.NewRecorder()

	EnsureRequestID(next).ServeHTTP(rec, req)

	require.Equal(t, "client-id", seen)
	require.Equal(t, "client-id", rec.Header().Get("X-Request-Id"))
}

func TestEnsureRequestID_GeneratesWhenMissing(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("X-Request-Id")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	EnsureRequestID(next).ServeHTTP(rec, req)

	require.NotEmpty(t, seen)
	require.Equal(t, seen, rec.Header().Get("X-Request-Id"))

	_, err := uuid.Parse(seen)
	require.NoError(t, err)
}

func TestRequestIDFrom(t *testing.T) {
	t.Run("nil request", func(t *testing.T) {
		require.Equal(t, "", RequestIDFrom(nil))
	})

	t.Run("context request id has priority", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-Id", "header-id")

		ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "ctx-id")
		req = req.WithContext(ctx)

		require.Equal(t, "ctx-id", RequestIDFrom(req))
	})

	t.Run("header fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-Id", "header-id")

		require.Equal(t, "header-id", RequestIDFrom(req))
	})

	t.Run("empty when missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		require.Equal(t, "", RequestIDFrom(req))
	})
}
