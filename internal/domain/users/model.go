package users

import (
	"time"

	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/subscription"
)

type User struct {
	ID           uint `gorm:"primaryKey"`
	Name         string
	Lastname     string
	Tel          string
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password     *string `gorm:"" json:"-"`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub" json:"-"`
	Role         string
	IsVerified   bool

	// Home district, used to scope alert/feed queries
	District *string `gorm:"column:district"`

	PlanID *uint
	Plan   *subscription.Plan

	// Free-text status from the payment flows: trialing | active | expired |
	// cancelled, plus elevated labels such as "organization"
	SubscriptionStatus *string `gorm:"column:subscription_status"`

	SubscriptionStart *time.Time
	SubscriptionEnd   *time.Time
	SubscriptionId    *string    `gorm:"column:subscription_id;uniqueIndex:idx_users_subscription_id"`
	StripeCustomerID  *string    `gorm:"column:stripe_customer_id;uniqueIndex:idx_users_stripe_customer_id"`
	CurrentPeriodEnd  *time.Time `gorm:"column:current_period_end"`

	TrialStartAt *time.Time `gorm:"column:trial_start_at"`
	TrialEndAt   *time.Time `gorm:"column:trial_end_at"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
