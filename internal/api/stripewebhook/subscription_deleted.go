package stripewebhooks

import (
	"time"

	"github.com/tfxTanoli/disaster-management-system-sub000/database"
	domainsub "github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/subscription"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/users"

	"github.com/stripe/stripe-go/v75"
)

func handleSubscriptionDeleted(sub *stripe.Subscription) error {
	if sub.ID == "" {
		return nil
	}

	periodEnd := time.Unix(sub.CurrentPeriodEnd, 0)

	var user users.User
	userID := userIDFromMetadata(sub.Metadata)
	if userID != 0 {
		_ = database.DB.Where("id = ?", userID).First(&user).Error
	}
	if user.ID == 0 {
		_ = database.DB.Where("subscription_id = ?", sub.ID).First(&user).Error
	}
	if user.ID == 0 {
		return nil
	}

	updates := map[string]interface{}{
		"subscription_status": domainsub.StatusCancelled,
		"subscription_end":    periodEnd,
		"current_period_end":  periodEnd,
	}

	return database.DB.Model(&users.User{}).
		Where("id = ?", user.ID).
		Updates(updates).Error
}
