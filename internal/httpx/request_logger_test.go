package httpx

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger(t *testing.T) {
	logger := logrus.New()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.InfoLevel)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	req.Header.Set("X-Request-Id", "req-789")
	rec := httptest.NewRecorder()

	RequestLogger(logger)(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusTeapot, rec.Code)

	logged := buf.String()
	require.Contains(t, logged, "request served")
	require.Contains(t, logged, "/api")
	require.Contains(t, logged, "418")
	require.Contains(t, logged, "req-789")
}
