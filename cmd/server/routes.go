package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"enrols.backend/internal/interfaces/http/handlers"
	"enrols.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler         *handlers.AuthHandler
	verificationHandler *handlers.VerificationHandler
	courseHandler       *handlers.CourseHandler
	applicationHandler  *handlers.ApplicationHandler
	preferenceHandler   *handlers.PreferenceHandler
	instituteHandler    *handlers.InstituteHandler
	authMiddleware      gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/register-otp", d.authHandler.RegisterWithOtp)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.GET("/profile", d.authMiddleware, d.authHandler.GetProfile)

			auth.POST("/forgot-password", d.verificationHandler.ForgotPassword)
			auth.POST("/reset-password/:token", d.verificationHandler.ResetPassword)
			auth.POST("/send-verification-email", d.authMiddleware, d.verificationHandler.SendVerificationEmail)
			auth.POST("/verify-email/:token", d.verificationHandler.VerifyEmail)

			auth.POST("/otp/request", d.verificationHandler.RequestOtp)
			auth.POST("/otp/login/:token", d.verificationHandler.OtpLogin)
			auth.POST("/otp/verify-phone/:token", d.verificationHandler.VerifyPhone)
		}

		// Course catalog (public read, institute write)
		courses := v1.Group("/courses")
		{
			courses.GET("", d.courseHandler.ListCourses)
			courses.GET("/slug/:slug", d.courseHandler.GetCourseBySlug)
			courses.GET("/:id", d.courseHandler.GetCourse)

			courses.POST("", d.authMiddleware, middleware.RequireInstituteAdmin(), d.courseHandler.CreateCourse)
			courses.PUT("/:id", d.authMiddleware, middleware.RequireInstituteAdmin(), d.courseHandler.UpdateCourse)
			courses.DELETE("/:id", d.authMiddleware, middleware.RequireInstituteAdmin(), d.courseHandler.DeleteCourse)
			courses.POST("/:id/batches", d.authMiddleware, middleware.RequireInstituteAdmin(), d.courseHandler.AddBatch)
			courses.GET("/:id/applications", d.authMiddleware, middleware.RequireInstituteAdmin(), d.applicationHandler.ListForCourse)
		}

		// Applications (student submits, institute reviews)
		applications := v1.Group("/applications")
		applications.Use(d.authMiddleware)
		{
			applications.POST("", middleware.RequireStudent(), middleware.RequirePhoneVerified(), d.applicationHandler.Apply)
			applications.GET("", middleware.RequireStudent(), d.applicationHandler.ListMine)
			applications.GET("/:id", d.applicationHandler.GetApplication)
			applications.PUT("/:id/status", middleware.RequireInstituteAdmin(), d.applicationHandler.UpdateStatus)
		}

		// Preferences (public reference data, student selections)
		preferences := v1.Group("/preferences")
		{
			preferences.GET("/tags", d.preferenceHandler.ListTags)
			preferences.GET("/interests", d.preferenceHandler.ListInterests)
			preferences.GET("/locations", d.preferenceHandler.ListLocations)
			preferences.GET("/education-levels", d.preferenceHandler.ListEducationLevels)

			gated := preferences.Group("")
			gated.Use(d.authMiddleware, middleware.RequireStudent())
			{
				gated.PUT("/tags", d.preferenceHandler.SelectTags)
				gated.PUT("/interests", d.preferenceHandler.SelectInterests)
				gated.PUT("/locations", d.preferenceHandler.SelectLocations)
				gated.PUT("/education-level", d.preferenceHandler.SetEducationLevel)
				gated.POST("/wishlist/:courseId", d.preferenceHandler.AddToWishlist)
				gated.DELETE("/wishlist/:courseId", d.preferenceHandler.RemoveFromWishlist)
			}
		}

		// Institutes (public directory, admin self-service)
		institutes := v1.Group("/institutes")
		{
			institutes.GET("", d.instituteHandler.List)
			institutes.GET("/me", d.authMiddleware, middleware.RequireInstituteAdmin(), d.instituteHandler.GetMyProfile)
			institutes.PUT("/me", d.authMiddleware, middleware.RequireInstituteAdmin(), d.instituteHandler.UpdateMyProfile)
			institutes.GET("/me/courses", d.authMiddleware, middleware.RequireInstituteAdmin(), d.courseHandler.ListMyCourses)
		}
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "enrols-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
