package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_GeneratesAndEchoes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())

	var seen string
	r.GET("/x", func(c *gin.Context) {
		seen = c.GetString(RequestIDKey)
		require.Equal(t, seen, c.Request.Context().Value("request_id"))
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	require.NotEmpty(t, seen)
	require.Equal(t, seen, w.Header().Get("X-Request-ID"))

	// Supplied IDs pass through untouched.
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "trace-42")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, "trace-42", seen)
}

func TestLoggerAndMetricsMiddleware_PassThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware(), LoggerMiddleware(), MetricsMiddleware())
	r.GET("/courses/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses/abc?x=1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	// Unmatched routes must not blow up the metrics labels.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}
