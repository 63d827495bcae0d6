package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// requireIdentity wraps a predicate over the resolved identity. An
// unauthenticated request is a 401, a failed predicate a 403. Staff and
// superuser accounts pass every gate.
func requireIdentity(message string, allowed func(*gin.Context) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			return
		}

		if identity.Account != nil && (identity.Account.IsStaff || identity.Account.IsSuperuser) {
			c.Next()
			return
		}

		if !allowed(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": message,
			})
			return
		}

		c.Next()
	}
}

// RequireStudent allows only accounts resolved to a student profile
func RequireStudent() gin.HandlerFunc {
	return requireIdentity("Student account required", func(c *gin.Context) bool {
		identity, _ := GetIdentity(c)
		return identity.IsStudent()
	})
}

// RequireInstituteAdmin allows only accounts resolved to an institute profile
func RequireInstituteAdmin() gin.HandlerFunc {
	return requireIdentity("Institute admin account required", func(c *gin.Context) bool {
		identity, _ := GetIdentity(c)
		return identity.IsInstituteAdmin()
	})
}

// RequireEmailVerified allows only students with a verified email
func RequireEmailVerified() gin.HandlerFunc {
	return requireIdentity("Email verification required", func(c *gin.Context) bool {
		identity, _ := GetIdentity(c)
		return identity.EmailVerified()
	})
}

// RequirePhoneVerified allows only students with a verified phone number
func RequirePhoneVerified() gin.HandlerFunc {
	return requireIdentity("Phone verification required", func(c *gin.Context) bool {
		identity, _ := GetIdentity(c)
		return identity.PhoneVerified()
	})
}
