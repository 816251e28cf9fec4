package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/tfxTanoli/disaster-management-system-sub000/config"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/access"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/subscription"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// installPrincipal wires a resolved session into the context the same way
// resolvePrincipal does, without touching the database.
func installPrincipal(p *access.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		installFlags(c, p)
		c.Next()
	}
}

func performGET(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func futureTime() *time.Time {
	t := time.Now().Add(48 * time.Hour)
	return &t
}

func pastTime() *time.Time {
	t := time.Now().Add(-48 * time.Hour)
	return &t
}

func TestRequirePremiumAccess_TrialUserAllowed(t *testing.T) {
	r := gin.New()
	p := &access.Principal{ID: "1", Role: access.RoleUser, Status: subscription.StatusTrialing, TrialEndAt: futureTime()}
	r.GET("/riskmap", installPrincipal(p), RequirePremiumAccess(), okHandler)

	w := performGET(r, "/riskmap")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequirePremiumAccess_SubscriberAllowed(t *testing.T) {
	r := gin.New()
	p := &access.Principal{ID: "2", Role: access.RoleUser, Status: subscription.StatusActive, SubEndAt: futureTime()}
	r.GET("/riskmap", installPrincipal(p), RequirePremiumAccess(), okHandler)

	w := performGET(r, "/riskmap")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequirePremiumAccess_ExpiredUserPaywalled(t *testing.T) {
	r := gin.New()
	p := &access.Principal{ID: "3", Role: access.RoleUser, Status: subscription.StatusExpired, TrialEndAt: pastTime()}
	r.GET("/riskmap", installPrincipal(p), RequirePremiumAccess(), okHandler)

	w := performGET(r, "/riskmap")
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Contains(t, w.Body.String(), "upgrade")
}

func TestRequirePremiumAccess_AdminBypassesPaywall(t *testing.T) {
	r := gin.New()
	// expired everything, still an admin
	p := &access.Principal{ID: "4", Role: access.RoleAdmin, Status: subscription.StatusExpired, TrialEndAt: pastTime()}
	r.GET("/riskmap", installPrincipal(p), RequirePremiumAccess(), okHandler)

	w := performGET(r, "/riskmap")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequirePremiumAccess_AnonymousGetsSignInPrompt(t *testing.T) {
	r := gin.New()
	r.GET("/riskmap", installPrincipal(nil), RequirePremiumAccess(), okHandler)

	w := performGET(r, "/riskmap")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "sign_in")
}

func TestRequirePremiumAccess_UnresolvedSessionIsPending(t *testing.T) {
	r := gin.New()
	// no session middleware at all -> flags never installed
	r.GET("/riskmap", RequirePremiumAccess(), okHandler)

	w := performGET(r, "/riskmap")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRequireRole_AdminAdmitted(t *testing.T) {
	r := gin.New()
	p := &access.Principal{ID: "5", Role: access.RoleAdmin, Status: subscription.StatusExpired}
	r.GET("/admin", installPrincipal(p), RequireAdmin(), okHandler)

	w := performGET(r, "/admin")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_RegularUserDenied(t *testing.T) {
	r := gin.New()
	p := &access.Principal{ID: "6", Role: access.RoleUser, Status: subscription.StatusActive, SubEndAt: futureTime()}
	r.GET("/admin", installPrincipal(p), RequireAdmin(), okHandler)

	w := performGET(r, "/admin")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_AnonymousDenied(t *testing.T) {
	r := gin.New()
	r.GET("/admin", installPrincipal(nil), RequireAdmin(), okHandler)

	w := performGET(r, "/admin")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_NoRolesMeansAnyAuthenticated(t *testing.T) {
	r := gin.New()
	p := &access.Principal{ID: "7", Role: access.RoleUser, Status: subscription.StatusExpired}
	r.GET("/area", installPrincipal(p), RequireRole(), okHandler)

	w := performGET(r, "/area")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	config.JWT_SECRET = "test-secret"

	r := gin.New()
	r.GET("/me", AuthMiddleware(), okHandler)

	w := performGET(r, "/me")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MalformedBearer(t *testing.T) {
	config.JWT_SECRET = "test-secret"

	r := gin.New()
	r.GET("/me", AuthMiddleware(), okHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "not-a-bearer-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuth_AnonymousContinues(t *testing.T) {
	r := gin.New()
	r.GET("/feed", OptionalAuth(), func(c *gin.Context) {
		flags, resolved := CurrentFlags(c)
		assert.True(t, resolved, "anonymous session still counts as resolved")
		assert.False(t, flags.IsAuthenticated)
		okHandler(c)
	})

	w := performGET(r, "/feed")
	assert.Equal(t, http.StatusOK, w.Code)
}
