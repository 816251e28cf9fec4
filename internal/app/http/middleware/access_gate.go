package middleware

import (
	"net/http"

	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/access"

	"github.com/gin-gonic/gin"
)

// RequirePremiumAccess gates individual premium features inside otherwise
// reachable routes. The decision list lives in access.Decide; this only
// maps its outcomes to responses:
//
//	pending -> 503, sign_in -> 401, paywall -> 402, allow -> next handler
func RequirePremiumAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		flags, resolved := CurrentFlags(c)

		switch access.Decide(resolved, flags) {
		case access.DecisionPending:
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error": "Session not resolved yet",
			})
		case access.DecisionSignIn:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":  "Sign in required",
				"action": "sign_in",
			})
		case access.DecisionPaywall:
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
				"error":  "Your trial has ended and no active subscription was found",
				"action": "upgrade",
			})
		case access.DecisionAllow:
			c.Next()
		}
	}
}
