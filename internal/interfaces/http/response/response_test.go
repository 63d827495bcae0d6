package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	domainerrors "enrols.backend/internal/domain/errors"
)

func record(t *testing.T, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", handler)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestError_AppErrorStatusAndCode(t *testing.T) {
	w := record(t, func(c *gin.Context) {
		Error(c, domainerrors.NotFound("course not found"))
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, domainerrors.CodeNotFound, body["code"])
	require.Equal(t, "course not found", body["message"])
}

func TestError_WrappedAppErrorUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("list courses: %w", domainerrors.Forbidden("course belongs to another institute"))
	w := record(t, func(c *gin.Context) {
		Error(c, wrapped)
	})
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestError_PlainErrorBecomesInternal(t *testing.T) {
	w := record(t, func(c *gin.Context) {
		Error(c, errors.New("connection reset"))
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, domainerrors.CodeInternal, body["code"])
	// Raw error text must not leak to the client.
	require.NotContains(t, body["message"], "connection reset")
}
