package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"enrols.backend/internal/domain/entities"
	"enrols.backend/pkg/jwt"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// AccountIDKey is the context key for the authenticated account ID
	AccountIDKey = "accountId"
	// IdentityKey is the context key for the resolved identity
	IdentityKey = "identity"
)

// IdentityLoader resolves a validated token subject to its account and
// richest profile view. *usecases.AuthUsecase satisfies it.
type IdentityLoader interface {
	GetAccount(ctx context.Context, id uuid.UUID) (*entities.Account, error)
	GetProfile(ctx context.Context, account *entities.Account) (*entities.Identity, error)
}

// AuthMiddleware validates the Bearer access token, loads the account and
// resolves its identity once per request. Downstream handlers read the
// identity from the gin context instead of hitting the database again.
func AuthMiddleware(jwtService *jwt.JWTService, loader IdentityLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header is required",
			})
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization format. Use: Bearer <token>",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			if err == jwt.ErrExpiredToken {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Token has expired",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid token",
			})
			return
		}

		account, err := loader.GetAccount(c.Request.Context(), claims.AccountID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Account not found",
			})
			return
		}
		if !account.IsActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Account is disabled",
			})
			return
		}

		identity, err := loader.GetProfile(c.Request.Context(), account)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to resolve identity",
			})
			return
		}

		c.Set(AccountIDKey, account.ID)
		c.Set(IdentityKey, identity)

		c.Next()
	}
}

// GetAccountID gets the authenticated account ID from context
func GetAccountID(c *gin.Context) (uuid.UUID, bool) {
	id, exists := c.Get(AccountIDKey)
	if !exists {
		return uuid.Nil, false
	}
	return id.(uuid.UUID), true
}

// GetIdentity gets the resolved identity from context
func GetIdentity(c *gin.Context) (*entities.Identity, bool) {
	v, exists := c.Get(IdentityKey)
	if !exists {
		return nil, false
	}
	return v.(*entities.Identity), true
}
