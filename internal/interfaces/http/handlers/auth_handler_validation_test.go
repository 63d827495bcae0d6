package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	return postJSONMethod(t, r, http.MethodPost, path, body)
}

func postJSONMethod(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &AuthHandler{}
	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/register-otp", h.RegisterWithOtp)
	r.POST("/auth/login", h.Login)

	require.Equal(t, http.StatusBadRequest, postJSON(t, r, "/auth/register", `{`).Code)
	require.Equal(t, http.StatusBadRequest, postJSON(t, r, "/auth/register", `{"email":"not-an-email","fullName":"A","phoneNumber":"1","password":"short"}`).Code)
	require.Equal(t, http.StatusBadRequest, postJSON(t, r, "/auth/register-otp", `{"email":"a@b.c"}`).Code)
	require.Equal(t, http.StatusBadRequest, postJSON(t, r, "/auth/login", `{"email":"a@b.c"}`).Code)
}

func TestAuthHandler_RefreshToken_NoToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &AuthHandler{}
	r := gin.New()
	r.POST("/auth/refresh", h.RefreshToken)

	w := postJSON(t, r, "/auth/refresh", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Refresh token is required")
}

func TestAuthHandler_GetProfile_Unauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &AuthHandler{}
	r := gin.New()
	r.GET("/auth/profile", h.GetProfile)

	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
