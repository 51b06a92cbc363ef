package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	jwtsvc "carwash/internal/pkg/jwt"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// RequireAuth rejects requests without a valid bearer token and stores the
// embedded caller identity in the context. The role is trusted as issued;
// a promotion or demotion only takes effect once the token expires.
func RequireAuth(j *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, reason := bearerClaims(c, j)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": reason})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// OptionalAuth attaches the caller identity when a valid token is present
// and lets the request through anonymously otherwise. Booking creation uses
// it so the mobile app can book without an account.
func OptionalAuth(j *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, _ := bearerClaims(c, j); claims != nil {
			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextRole, claims.Role)
		}
		c.Next()
	}
}

func bearerClaims(c *gin.Context, j *jwtsvc.Service) (*jwtsvc.Claims, string) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, "Missing Authorization header"
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, "Invalid Authorization header"
	}

	claims, err := j.ValidateToken(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, "Invalid or expired token"
	}
	return claims, ""
}

// CallerID returns the authenticated user id, or 0 for anonymous callers.
func CallerID(c *gin.Context) int64 {
	return c.GetInt64(ContextUserID)
}

func CallerRole(c *gin.Context) string {
	return c.GetString(ContextRole)
}
