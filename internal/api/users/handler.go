package users

import (
	"net/http"
	"time"

	"github.com/tfxTanoli/disaster-management-system-sub000/database"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/app/http/middleware"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/access"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func GetCurrentUser(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.
		Preload("Plan").
		Where("id = ?", userID).
		First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	now := time.Now()

	// Flags come from the session middleware; never recompute here
	flags, _ := middleware.CurrentFlags(c)

	resp := MeResponse{
		User: UserDTO{
			ID:         user.ID,
			Email:      user.Email,
			Name:       user.Name,
			Lastname:   user.Lastname,
			Tel:        stringPtrIfNotEmpty(user.Tel),
			District:   user.District,
			Role:       user.Role,
			IsVerified: user.IsVerified,
		},
		Billing: BillingDTO{
			Plan:         BuildPlanDTO(user.Plan),
			Subscription: BuildSubscriptionDTO(user),
			Trial:        BuildTrialDTO(now, user.TrialStartAt, user.TrialEndAt),
		},
		Access: AccessDTO{
			Class: string(access.ClassOf(flags)),
			Flags: flags,
		},
	}

	c.JSON(http.StatusOK, resp)
}

func stringPtrIfNotEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing token"})
		return
	}

	type Token struct {
		UserID int
	}
	var t Token
	if err := database.DB.Table("verification_tokens").Where("token = ?", token).First(&t).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
		return
	}

	if err := database.DB.Model(&users.User{}).Where("id = ?", t.UserID).Update("is_verified", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify user"})
		return
	}

	_ = database.DB.Exec("DELETE FROM verification_tokens WHERE token = ?", token)

	redirectURL := "http://localhost:5173/signin"
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
