package admin

import (
	"net/http"
	"time"

	"github.com/tfxTanoli/disaster-management-system-sub000/database"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/subscription"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type grantRequest struct {
	PlanID uint `json:"plan_id" binding:"required"`
	// Overrides the plan's duration when set
	Days int `json:"days"`
}

// POST /admin/users/:id/grant — manual activation without payment
func GrantSubscription(c *gin.Context) {
	var req grantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var plan subscription.Plan
	if err := database.DB.First(&plan, "id = ?", req.PlanID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown plan"})
		return
	}
	if req.Days > 0 {
		plan.DurationDays = req.Days
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var user users.User
		if err := tx.First(&user, "id = ?", c.Param("id")).Error; err != nil {
			return err
		}
		return activatePlan(tx, user.ID, &plan, time.Now())
	})
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to grant subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscription granted"})
}

// POST /admin/users/:id/revoke — ends the subscription immediately
func RevokeSubscription(c *gin.Context) {
	now := time.Now()
	res := database.DB.Model(&users.User{}).
		Where("id = ?", c.Param("id")).
		Updates(map[string]interface{}{
			"subscription_status": subscription.StatusCancelled,
			"subscription_end":    now,
			"current_period_end":  now,
		})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke subscription"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscription revoked"})
}
