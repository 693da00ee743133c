package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/bde-polytech/backend/internal/app/models"
	"github.com/bde-polytech/backend/internal/pkg/apperrors"
	"github.com/bde-polytech/backend/internal/pkg/auth"
)

// Context keys set by the auth middleware.
const (
	ContextUserUUID    = "userUUID"
	ContextEmail       = "email"
	ContextPermissions = "permissions"
)

// AuthMiddleware validates the bearer token and stores the caller's identity
// on the request context.
func AuthMiddleware(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserUUID, claims.UserUUID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextPermissions, claims.Permissions)
		c.Next()
	}
}

// OptionalAuthMiddleware stores the caller's identity when a valid bearer
// token is present but lets anonymous requests through. Routes with
// visibility rules that depend on the caller use it.
func OptionalAuthMiddleware(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.Next()
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ContextUserUUID, claims.UserUUID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextPermissions, claims.Permissions)
		c.Next()
	}
}

// RequirePermission rejects callers lacking the given capability. It must run
// after AuthMiddleware.
func RequirePermission(permission models.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CallerHasPermission(c, permission) {
			HandleAPIError(c, apperrors.ErrPermissionDenied)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CallerHasPermission reports whether the authenticated caller holds the
// capability. Unauthenticated callers never do.
func CallerHasPermission(c *gin.Context, permission models.Permission) bool {
	names, exists := c.Get(ContextPermissions)
	if !exists {
		return false
	}

	encoded, ok := names.([]string)
	if !ok {
		return false
	}

	return models.HasPermission(models.DecodePermissions(encoded), permission)
}

// CallerUUID returns the authenticated caller's uuid, empty when the request
// is unauthenticated.
func CallerUUID(c *gin.Context) string {
	value, exists := c.Get(ContextUserUUID)
	if !exists {
		return ""
	}

	userUUID, ok := value.(string)
	if !ok {
		return ""
	}
	return userUUID
}
