package main

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"enrols.backend/internal/interfaces/http/handlers"
)

func TestRegisterAPIV1Routes_Table(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	registerAPIV1Routes(r, routeDeps{
		authHandler:         &handlers.AuthHandler{},
		verificationHandler: &handlers.VerificationHandler{},
		courseHandler:       &handlers.CourseHandler{},
		applicationHandler:  &handlers.ApplicationHandler{},
		preferenceHandler:   &handlers.PreferenceHandler{},
		instituteHandler:    &handlers.InstituteHandler{},
		authMiddleware:      func(c *gin.Context) { c.Next() },
	})

	want := []string{
		"POST /api/v1/auth/register",
		"POST /api/v1/auth/register-otp",
		"POST /api/v1/auth/login",
		"POST /api/v1/auth/refresh",
		"GET /api/v1/auth/profile",
		"POST /api/v1/auth/forgot-password",
		"POST /api/v1/auth/reset-password/:token",
		"POST /api/v1/auth/verify-email/:token",
		"POST /api/v1/auth/otp/request",
		"POST /api/v1/auth/otp/login/:token",
		"POST /api/v1/auth/otp/verify-phone/:token",
		"GET /api/v1/courses",
		"GET /api/v1/courses/slug/:slug",
		"POST /api/v1/courses/:id/batches",
		"GET /api/v1/courses/:id/applications",
		"PUT /api/v1/applications/:id/status",
		"PUT /api/v1/preferences/education-level",
		"POST /api/v1/preferences/wishlist/:courseId",
		"GET /api/v1/institutes/me/courses",
	}

	got := map[string]bool{}
	for _, route := range r.Routes() {
		got[route.Method+" "+route.Path] = true
	}

	for _, route := range want {
		require.True(t, got[route], "missing route %s", route)
	}
}
