package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"scribverse-backend/internal/shared/response"
	"scribverse-backend/pkg/jwt"
)

// Context keys set by the auth gate.
const (
	CtxUserID    = "userID"
	CtxUserEmail = "userEmail"
	CtxUserName  = "userName"
)

// AuthRequired verifies the bearer token and injects the resolved identity
// into the request context. Public endpoints are registered outside the
// gated route groups, so there is no path matching here at all.
func AuthRequired(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearerToken(c)
		if !ok {
			response.ErrorResponse(c, 401, "AUTHENTICATION_REQUIRED", "missing authorization header")
			c.Abort()
			return
		}

		claims, err := manager.Verify(token)
		if err != nil {
			response.ErrorResponse(c, 401, "AUTHENTICATION_FAILED", "invalid token")
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			response.ErrorResponse(c, 401, "AUTHENTICATION_FAILED", "invalid user ID in token")
			c.Abort()
			return
		}

		c.Set(CtxUserID, userID)
		c.Set(CtxUserEmail, claims.Email)
		c.Set(CtxUserName, claims.Name)

		c.Next()
	}
}

// UserID returns the authenticated caller's id from the gin context.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(CtxUserID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func extractBearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	// Accept both "Bearer <token>" and a bare token; the original SPA sent
	// the token without the scheme prefix.
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1], true
	}
	return authHeader, true
}
