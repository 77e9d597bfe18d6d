package hello

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandler_Root(t *testing.T) {
	handler := New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	handler.Root(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	require.Equal(t, `{"status":"success","message":"Hello World","data":{}}`+"\n", rec.Body.String())
}

func TestHandler_API(t *testing.T) {
	handler := New()

	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	rec := httptest.NewRecorder()

	handler.API(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, `{"status":"success","message":"Hello API","data":{}}`+"\n", rec.Body.String())
}

func TestHandler_RootIdempotent(t *testing.T) {
	handler := New()

	var first string
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		handler.Root(rec, req)

		if i == 0 {
			first = rec.Body.String()
			continue
		}
		require.Equal(t, first, rec.Body.String())
	}
}
