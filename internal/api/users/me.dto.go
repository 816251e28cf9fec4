package users

import (
	"time"

	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/access"
)

type MeResponse struct {
	User    UserDTO    `json:"user"`
	Billing BillingDTO `json:"billing"`
	Access  AccessDTO  `json:"access"`
}

/* ---------- USER ---------- */

type UserDTO struct {
	ID         uint    `json:"id"`
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	Lastname   string  `json:"lastname"`
	Tel        *string `json:"tel"`
	District   *string `json:"district"`
	Role       string  `json:"role"`
	IsVerified bool    `json:"is_verified"`
}

/* ---------- BILLING ---------- */

type BillingDTO struct {
	Plan         *PlanDTO         `json:"plan"`
	Subscription *SubscriptionDTO `json:"subscription"`
	Trial        *TrialDTO        `json:"trial"`
}

type PlanDTO struct {
	ID       uint    `json:"id"`
	Key      string  `json:"key"`
	Interval string  `json:"interval"`
	PricePKR float64 `json:"price_pkr"`
}

type SubscriptionDTO struct {
	Status   string     `json:"status"`
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
}

type TrialDTO struct {
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
	DaysLeft *int       `json:"days_left"`
}

/* ---------- ACCESS ---------- */

type AccessDTO struct {
	Class string       `json:"class"` // anonymous|admin|trial|subscriber|blocked
	Flags access.Flags `json:"flags"`
}
