// Package middleware provides the bearer-token authentication middleware.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cashtrackr_backend/internal/api"
	"cashtrackr_backend/internal/feature/auth/domain/entity"
)

// ContextUserKey is the gin context key holding the authenticated identity.
const ContextUserKey = "authUser"

// Identity is the authenticated user attached to the request context.
// Only id, name and email are carried; the password hash never reaches
// the request context.
type Identity struct {
	ID    uint
	Name  string
	Email string
}

// TokenVerifier checks a session token and returns the encoded user ID.
type TokenVerifier interface {
	VerifyToken(token string) (uint, error)
}

// UserFinder resolves a user ID to a live record.
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// Authenticate returns a middleware that requires a valid bearer token and
// attaches the resolved identity to the request context. A token whose user
// no longer exists is rejected like any other invalid token.
func Authenticate(verifier TokenVerifier, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No Autorizado"})
			return
		}

		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Token no válido"})
			return
		}

		userID, err := verifier.VerifyToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Token no válido"})
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Token no válido"})
			return
		}

		c.Set(ContextUserKey, Identity{ID: user.ID, Name: user.Name, Email: user.Email})
		c.Next()
	}
}

// CurrentUser returns the identity attached by Authenticate.
func CurrentUser(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}
