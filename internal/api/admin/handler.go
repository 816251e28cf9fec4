package admin

import (
	"net/http"
	"time"

	"github.com/tfxTanoli/disaster-management-system-sub000/database"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/alerts"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/billing"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/inventory"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/reports"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type AdminUser struct {
	ID                 uint       `json:"id"`
	Name               string     `json:"name"`
	Lastname           string     `json:"lastname"`
	Tel                string     `json:"tel"`
	Email              string     `json:"email"`
	Role               string     `json:"role"`
	IsVerified         bool       `json:"is_verified"`
	District           *string    `json:"district,omitempty"`
	PlanName           *string    `json:"plan_name,omitempty"`
	SubscriptionStatus *string    `json:"subscription_status,omitempty"`
	StripeCustomerID   *string    `json:"stripe_customer_id,omitempty"`
	StripeSubID        *string    `json:"stripe_subscription_id,omitempty"`
	SubscriptionStart  *time.Time `json:"subscription_start,omitempty"`
	SubscriptionEnd    *time.Time `json:"subscription_end,omitempty"`
	TrialEndAt         *time.Time `json:"trial_end_at,omitempty"`
}

type AdminPayment struct {
	ID         uint    `json:"id"`
	Email      string  `json:"email"`
	PlanName   *string `json:"plan_name,omitempty"`
	AmountPKR  float64 `json:"amount_pkr"`
	Status     string  `json:"status"`
	InvoiceID  *string `json:"invoice_id,omitempty"`
	ReceiptURL *string `json:"receipt_url,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

type AdminStats struct {
	TotalUsers     int            `json:"total_users"`
	TotalRevenue   float64        `json:"total_revenue"`
	RecentRevenue  float64        `json:"recent_revenue"`
	UsersPerStatus map[string]int `json:"users_per_status"`
	ActiveAlerts   int            `json:"active_alerts"`
	OpenReports    int            `json:"open_reports"`
	PendingProofs  int            `json:"pending_proofs"`
	LowStockItems  int            `json:"low_stock_items"`
}

func AdminDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the admin dashboard 👑",
	})
}

func ListAllUsers(c *gin.Context) {
	var all []users.User
	err := database.DB.Preload("Plan").Find(&all).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	var adminUsers []AdminUser
	for _, u := range all {
		adminUsers = append(adminUsers, buildAdminUser(u))
	}

	c.JSON(http.StatusOK, adminUsers)
}

func buildAdminUser(u users.User) AdminUser {
	var planName *string
	if u.Plan != nil {
		planName = &u.Plan.Name
	}

	return AdminUser{
		ID:                 u.ID,
		Name:               u.Name,
		Lastname:           u.Lastname,
		Tel:                u.Tel,
		Email:              u.Email,
		Role:               u.Role,
		IsVerified:         u.IsVerified,
		District:           u.District,
		PlanName:           planName,
		SubscriptionStatus: u.SubscriptionStatus,
		StripeCustomerID:   u.StripeCustomerID,
		StripeSubID:        u.SubscriptionId,
		SubscriptionStart:  u.SubscriptionStart,
		SubscriptionEnd:    u.SubscriptionEnd,
		TrialEndAt:         u.TrialEndAt,
	}
}

func ListAllPayments(c *gin.Context) {
	var payments []billing.Payment
	err := database.DB.Preload("User").Preload("Plan").Order("created_at DESC").Find(&payments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	var result []AdminPayment
	for _, p := range payments {
		var planName *string
		if p.Plan != nil {
			planName = &p.Plan.Name
		}
		result = append(result, AdminPayment{
			ID:         p.ID,
			Email:      p.User.Email,
			PlanName:   planName,
			AmountPKR:  p.AmountPKR,
			Status:     p.Status,
			InvoiceID:  p.InvoiceID,
			ReceiptURL: p.ReceiptURL,
			CreatedAt:  p.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	c.JSON(http.StatusOK, result)
}

func GetAdminStats(c *gin.Context) {
	var stats AdminStats

	var totalUsers int64
	var totalRevenue float64
	var recentRevenue float64

	database.DB.Model(&users.User{}).Count(&totalUsers)
	database.DB.Model(&billing.Payment{}).Where("status = ?", "paid").Select("COALESCE(SUM(amount_pkr), 0)").Scan(&totalRevenue)

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	database.DB.Model(&billing.Payment{}).
		Where("status = ? AND created_at >= ?", "paid", thirtyDaysAgo).
		Select("COALESCE(SUM(amount_pkr), 0)").Scan(&recentRevenue)

	stats.TotalUsers = int(totalUsers)
	stats.TotalRevenue = totalRevenue
	stats.RecentRevenue = recentRevenue

	type StatusCount struct {
		Status *string
		Count  int
	}
	var counts []StatusCount

	database.DB.
		Table("users").
		Select("subscription_status as status, COUNT(id) as count").
		Group("subscription_status").
		Scan(&counts)

	stats.UsersPerStatus = map[string]int{}
	for _, sc := range counts {
		name := "none"
		if sc.Status != nil {
			name = *sc.Status
		}
		stats.UsersPerStatus[name] = sc.Count
	}

	var activeAlerts, openReports, pendingProofs, lowStock int64
	now := time.Now()
	database.DB.Model(&alerts.Alert{}).
		Where("active = ? AND (expires_at IS NULL OR expires_at > ?)", true, now).
		Count(&activeAlerts)
	database.DB.Model(&reports.IncidentReport{}).
		Where("status = ?", reports.StatusPending).
		Count(&openReports)
	database.DB.Model(&billing.PaymentProof{}).
		Where("status = ?", billing.ProofPending).
		Count(&pendingProofs)
	database.DB.Model(&inventory.Item{}).
		Where("low_stock_threshold > 0 AND quantity <= low_stock_threshold").
		Count(&lowStock)

	stats.ActiveAlerts = int(activeAlerts)
	stats.OpenReports = int(openReports)
	stats.PendingProofs = int(pendingProofs)
	stats.LowStockItems = int(lowStock)

	c.JSON(http.StatusOK, stats)
}

func GetUserDetails(c *gin.Context) {
	userID := c.Param("id")

	var user users.User
	if err := database.DB.Preload("Plan").First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var payments []billing.Payment
	if err := database.DB.Preload("Plan").Where("user_id = ?", userID).Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	var proofs []billing.PaymentProof
	if err := database.DB.Preload("Plan").Where("user_id = ?", userID).Find(&proofs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch proofs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":     buildAdminUser(user),
		"payments": payments,
		"proofs":   proofs,
	})
}
