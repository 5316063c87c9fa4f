package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(handler http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/info", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiterAllowsWithinBurst(t *testing.T) {
	handler := NewRateLimiter(1, 3).Wrap(okHandler())

	for i := 0; i < 3; i++ {
		rec := doRequest(handler, "10.0.0.1:1234")
		require.Equal(t, http.StatusOK, rec.Code, "request %d within burst", i)
	}
}

func TestRateLimiterRejectsOverBurst(t *testing.T) {
	handler := NewRateLimiter(1, 2).Wrap(okHandler())

	doRequest(handler, "10.0.0.2:1234")
	doRequest(handler, "10.0.0.2:1234")

	rec := doRequest(handler, "10.0.0.2:1234")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.JSONEq(t,
		`{"status":"error","error":"too many requests"}`,
		rec.Body.String())
}

func TestRateLimiterIsPerClient(t *testing.T) {
	handler := NewRateLimiter(1, 1).Wrap(okHandler())

	// Exhaust one client's bucket; a different IP still gets through.
	doRequest(handler, "10.0.0.3:1234")
	require.Equal(t, http.StatusTooManyRequests,
		doRequest(handler, "10.0.0.3:1234").Code)

	require.Equal(t, http.StatusOK,
		doRequest(handler, "10.0.0.4:1234").Code)
}

func TestClientIPFallsBackWithoutPort(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.5"

	require.Equal(t, "10.0.0.5", clientIP(req))
}
