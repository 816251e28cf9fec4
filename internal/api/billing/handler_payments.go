package billing

import (
	"net/http"

	"github.com/tfxTanoli/disaster-management-system-sub000/database"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/billing"

	"github.com/gin-gonic/gin"
)

// GET /billing/payments — the signed-in user's Stripe payment history
func ListMyPayments(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var payments []billing.Payment
	err := database.DB.
		Preload("Plan").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	out := make([]gin.H, 0, len(payments))
	for _, p := range payments {
		row := gin.H{
			"id":         p.ID,
			"amount_pkr": p.AmountPKR,
			"status":     p.Status,
			"created_at": p.CreatedAt,
		}
		if p.Plan != nil {
			row["plan"] = p.Plan.Name
		}
		if p.ReceiptURL != nil {
			row["receipt_url"] = *p.ReceiptURL
		}
		out = append(out, row)
	}

	c.JSON(http.StatusOK, gin.H{"payments": out})
}
