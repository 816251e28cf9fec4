package billing

import (
	"time"

	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/subscription"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/users"
)

// Payment is a card payment settled through Stripe checkout.
type Payment struct {
	ID                   uint `gorm:"primaryKey"`
	UserID               uint
	User                 users.User
	PlanID               *uint
	Plan                 *subscription.Plan
	StripeSessionID      string `gorm:"uniqueIndex"`
	StripeSubscriptionID *string
	AmountPKR            float64
	Status               string
	InvoiceID            *string
	ReceiptURL           *string
	CreatedAt            time.Time
}

// Proof review states
const (
	ProofPending  = "pending"
	ProofApproved = "approved"
	ProofRejected = "rejected"
)

// PaymentProof is a manually-reviewed bank transfer: the citizen uploads a
// receipt image to object storage and submits its key plus the transfer
// reference; an admin approves or rejects it.
type PaymentProof struct {
	ID     string     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uint       `gorm:"not null;index" json:"-"`
	User   users.User `json:"-"`

	PlanID uint               `gorm:"not null" json:"plan_id"`
	Plan   *subscription.Plan `json:"plan,omitempty"`

	AmountPKR    float64    `gorm:"not null" json:"amount_pkr"`
	Reference    string     `gorm:"not null" json:"reference"` // bank transaction reference
	ImageKey     string     `gorm:"not null" json:"image_key"` // object-store key of the receipt
	Status       string     `gorm:"not null;default:'pending';index" json:"status"`
	ReviewNote   *string    `json:"review_note,omitempty"`
	ReviewedByID *uint      `json:"-"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
