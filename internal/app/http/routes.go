package routes

import (
	adminapi "github.com/tfxTanoli/disaster-management-system-sub000/internal/api/admin"
	alertsapi "github.com/tfxTanoli/disaster-management-system-sub000/internal/api/alerts"
	authapi "github.com/tfxTanoli/disaster-management-system-sub000/internal/api/auth"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/api/billing"
	contentapi "github.com/tfxTanoli/disaster-management-system-sub000/internal/api/content"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/api/facilities"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/api/feed"
	inventoryapi "github.com/tfxTanoli/disaster-management-system-sub000/internal/api/inventory"
	reportsapi "github.com/tfxTanoli/disaster-management-system-sub000/internal/api/reports"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/api/riskmap"
	stripewebhooks "github.com/tfxTanoli/disaster-management-system-sub000/internal/api/stripewebhook"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/api/users"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/api/weather"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// ✅ Apply input sanitization to public routes only

	r.POST("/webhook", stripewebhooks.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/plans", billing.ListPlans)
	public.GET("/verify", users.VerifyEmail)
	public.POST("/resend-verification", authapi.ResendVerification)
	public.POST("/request-password-reset", authapi.RequestPasswordReset)
	public.POST("/reset-password", authapi.ResetPassword)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Public portal data. OptionalAuth lets the feed widen for premium users
	// while staying reachable for everyone else.
	open := r.Group("/")
	open.Use(middleware.OptionalAuth())
	open.GET("/alerts", alertsapi.ListActiveAlerts)
	open.GET("/alerts/:id", alertsapi.GetAlert)
	open.GET("/reports/track/:code", reportsapi.TrackReport)
	open.GET("/facilities", facilities.ListFacilities)
	open.GET("/ngos", facilities.ListNGOs)
	open.GET("/pages", contentapi.ListPublishedPages)
	open.GET("/pages/:slug", contentapi.GetPublishedPage)
	open.GET("/feed", feed.GetFeed)
	open.GET("/weather", weather.GetForecast)

	// Authenticated. Citizen-submitted text ends up republished in the
	// public feed, so these writes get the same sanitization as the
	// public ones.
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(), middleware.SanitizeAndCleanInputMiddleware())
	auth.GET("/me", users.GetCurrentUser)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.POST("/reports", reportsapi.CreateReport)
	auth.GET("/reports/mine", reportsapi.ListMyReports)
	auth.POST("/assessments", reportsapi.CreateAssessment)
	auth.GET("/assessments/mine", reportsapi.ListMyAssessments)

	auth.POST("/create-checkout-session", billing.CreateCheckoutSession)
	auth.POST("/billing-portal", billing.CreateBillingPortal)
	auth.GET("/payments", billing.ListMyPayments)
	auth.POST("/billing/proofs", billing.SubmitPaymentProof)
	auth.GET("/billing/proofs", billing.ListMyProofs)

	// Premium: trial or active subscription required
	premium := auth.Group("/premium")
	premium.Use(middleware.RequirePremiumAccess())
	premium.GET("/risk-map", riskmap.GetRiskMap)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/stats", adminapi.GetAdminStats)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/user/:id", adminapi.GetUserDetails)
	admin.GET("/payments", adminapi.ListAllPayments)

	admin.GET("/proofs", adminapi.ListProofs)
	admin.POST("/proofs/:id/approve", adminapi.ApproveProof)
	admin.POST("/proofs/:id/reject", adminapi.RejectProof)
	admin.POST("/users/:id/grant", adminapi.GrantSubscription)
	admin.POST("/users/:id/revoke", adminapi.RevokeSubscription)

	admin.GET("/alerts", alertsapi.ListAllAlerts)
	admin.POST("/alerts", alertsapi.BroadcastAlert)
	admin.PUT("/alerts/:id", alertsapi.UpdateAlert)
	admin.POST("/alerts/:id/deactivate", alertsapi.DeactivateAlert)

	admin.GET("/reports", reportsapi.ListAllReports)
	admin.POST("/reports/:id/status", reportsapi.SetReportStatus)
	admin.GET("/assessments", reportsapi.ListAllAssessments)

	admin.POST("/facilities", facilities.CreateFacility)
	admin.PUT("/facilities/:id", facilities.UpdateFacility)
	admin.DELETE("/facilities/:id", facilities.DeleteFacility)
	admin.POST("/ngos", facilities.CreateNGO)
	admin.PUT("/ngos/:id", facilities.UpdateNGO)

	admin.GET("/pages", contentapi.ListAllPages)
	admin.POST("/pages", contentapi.CreatePage)
	admin.PUT("/pages/:id", contentapi.UpdatePage)
	admin.POST("/pages/:id/publish", contentapi.PublishPage)
	admin.POST("/pages/:id/unpublish", contentapi.UnpublishPage)
	admin.DELETE("/pages/:id", contentapi.DeletePage)

	admin.GET("/inventory", inventoryapi.ListItems)
	admin.GET("/inventory/low-stock", inventoryapi.ListLowStock)
	admin.POST("/inventory", inventoryapi.CreateItem)
	admin.PUT("/inventory/:id", inventoryapi.UpdateItem)
	admin.POST("/inventory/:id/adjust", inventoryapi.AdjustQuantity)
	admin.DELETE("/inventory/:id", inventoryapi.DeleteItem)
}
