package billing

import (
	"net/http"

	"github.com/tfxTanoli/disaster-management-system-sub000/database"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/billing"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/subscription"

	"github.com/gin-gonic/gin"
)

type proofRequest struct {
	PlanID    uint    `json:"plan_id" binding:"required"`
	AmountPKR float64 `json:"amount_pkr" binding:"required"`
	Reference string  `json:"reference" binding:"required"`
	ImageKey  string  `json:"image_key" binding:"required"`
}

// POST /billing/proofs — submit a bank transfer receipt for manual review
func SubmitPaymentProof(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var req proofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var plan subscription.Plan
	if err := database.DB.First(&plan, "id = ?", req.PlanID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown plan"})
		return
	}

	// one pending proof per user at a time
	var pending int64
	database.DB.Model(&billing.PaymentProof{}).
		Where("user_id = ? AND status = ?", userID, billing.ProofPending).
		Count(&pending)
	if pending > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "You already have a proof awaiting review"})
		return
	}

	proof := billing.PaymentProof{
		UserID:    userID,
		PlanID:    plan.ID,
		AmountPKR: req.AmountPKR,
		Reference: req.Reference,
		ImageKey:  req.ImageKey,
		Status:    billing.ProofPending,
	}
	if err := database.DB.Create(&proof).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit proof"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": proof.ID, "status": proof.Status})
}

// GET /billing/proofs — the signed-in user's submitted proofs
func ListMyProofs(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var proofs []billing.PaymentProof
	err := database.DB.
		Preload("Plan").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&proofs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load proofs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"proofs": proofs})
}
