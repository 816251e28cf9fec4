package admin

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tfxTanoli/disaster-management-system-sub000/database"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/billing"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/subscription"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /admin/proofs?status=pending
func ListProofs(c *gin.Context) {
	status := c.DefaultQuery("status", billing.ProofPending)

	var proofs []billing.PaymentProof
	err := database.DB.
		Preload("User").
		Preload("Plan").
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&proofs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load proofs"})
		return
	}

	out := make([]gin.H, 0, len(proofs))
	for _, p := range proofs {
		row := gin.H{
			"id":         p.ID,
			"email":      p.User.Email,
			"amount_pkr": p.AmountPKR,
			"reference":  p.Reference,
			"image_key":  p.ImageKey,
			"status":     p.Status,
			"created_at": p.CreatedAt,
		}
		if p.Plan != nil {
			row["plan"] = p.Plan.Name
		}
		out = append(out, row)
	}

	c.JSON(http.StatusOK, gin.H{"proofs": out})
}

type reviewRequest struct {
	Note string `json:"note"`
}

// POST /admin/proofs/:id/approve — activates the plan on the user row
func ApproveProof(c *gin.Context) {
	reviewProof(c, billing.ProofApproved)
}

// POST /admin/proofs/:id/reject
func RejectProof(c *gin.Context) {
	reviewProof(c, billing.ProofRejected)
}

func reviewProof(c *gin.Context, verdict string) {
	var req reviewRequest
	_ = c.ShouldBindJSON(&req) // note is optional

	reviewerID := c.GetUint("user_id")
	now := time.Now()

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var proof billing.PaymentProof
		if err := tx.Preload("Plan").First(&proof, "id = ?", c.Param("id")).Error; err != nil {
			return err
		}
		if proof.Status != billing.ProofPending {
			return errAlreadyReviewed
		}

		updates := map[string]interface{}{
			"status":         verdict,
			"reviewed_by_id": reviewerID,
			"reviewed_at":    now,
		}
		if req.Note != "" {
			updates["review_note"] = req.Note
		}
		if err := tx.Model(&proof).Updates(updates).Error; err != nil {
			return err
		}

		if verdict != billing.ProofApproved {
			return nil
		}
		if proof.Plan == nil {
			return fmt.Errorf("proof %s has no plan attached", proof.ID)
		}

		return activatePlan(tx, proof.UserID, proof.Plan, now)
	})
	if err == errAlreadyReviewed {
		c.JSON(http.StatusConflict, gin.H{"error": "Proof already reviewed"})
		return
	}
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Proof not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to review proof"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": verdict})
}

// activatePlan writes the subscription window onto the user row. Approving a
// proof while a subscription is still running extends from the current end,
// not from today.
func activatePlan(tx *gorm.DB, userID uint, plan *subscription.Plan, now time.Time) error {
	var user users.User
	if err := tx.First(&user, "id = ?", userID).Error; err != nil {
		return err
	}

	start := now
	end := now.AddDate(0, 0, plan.DurationDays)
	if user.SubscriptionEnd != nil && user.SubscriptionEnd.After(now) {
		end = user.SubscriptionEnd.AddDate(0, 0, plan.DurationDays)
	}

	status := plan.StatusLabel
	if status == "" {
		status = subscription.StatusActive
	}

	return tx.Model(&users.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"plan_id":             plan.ID,
			"subscription_status": status,
			"subscription_start":  start,
			"subscription_end":    end,
			"trial_start_at":      nil,
			"trial_end_at":        nil,
		}).Error
}
