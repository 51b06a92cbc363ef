package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carwash/internal/domain"
	"carwash/internal/pkg/response"
)

// RequireRole ensures the authenticated caller holds one of the given roles.
func RequireRole(roles ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := domain.UserRole(CallerRole(c))
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		response.Error(c, http.StatusForbidden, "Insufficient permissions")
		c.Abort()
	}
}

func AdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleAdmin)
}

// StaffOnly admits the crew that works bookings: admins and washers.
func StaffOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleAdmin, domain.RoleWasher)
}
