package middleware

import (
	"net/http"

	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/access"

	"github.com/gin-gonic/gin"
)

// RequireRole guards whole route groups. No roles means "any authenticated
// principal". The role comes from the resolved principal (profile row),
// not the token claim, so a stale token cannot keep admin access after a
// demotion. Fails closed: unresolved or under-privileged -> denied.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		flags, resolved := CurrentFlags(c)
		if !resolved {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Session not resolved yet"})
			return
		}
		if !flags.IsAuthenticated {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Sign in required"})
			return
		}
		if len(allowed) == 0 {
			c.Next()
			return
		}

		p := CurrentPrincipal(c)
		if p == nil || !allowed[p.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.Next()
	}
}

// RequireAdmin is shorthand for the admin back-office groups.
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(access.RoleAdmin)
}
