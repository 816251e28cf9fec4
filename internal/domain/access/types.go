package access

import "time"

// Role values as stored on the user row.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Principal is the resolved identity + entitlement snapshot for one
// session. It is rebuilt wholesale on every session change, never patched.
type Principal struct {
	ID          string
	DisplayName string
	Role        string
	Status      string // normalized subscription status
	TrialEndAt  *time.Time
	SubEndAt    *time.Time
}

// Flags are the derived booleans the gates run on. Recomputed from the
// current Principal on every change; never cached across snapshots.
type Flags struct {
	IsAuthenticated       bool `json:"is_authenticated"`
	IsAdministrator       bool `json:"is_administrator"`
	IsTrialActive         bool `json:"is_trial_active"`
	HasActiveSubscription bool `json:"has_active_subscription"`
	NeedsPayment          bool `json:"needs_payment"`
	IsPremium             bool `json:"is_premium"`
}

// Decision is what a gate tells the caller to present.
type Decision string

const (
	DecisionPending Decision = "pending"
	DecisionSignIn  Decision = "sign_in"
	DecisionAllow   Decision = "allow"
	DecisionPaywall Decision = "paywall"
)

// Class is the single effective access class for a snapshot. Exactly one
// applies at a time; consumers must not recombine flags on their own.
type Class string

const (
	ClassAnonymous   Class = "anonymous"
	ClassAdminBypass Class = "admin"
	ClassTrial       Class = "trial"
	ClassSubscriber  Class = "subscriber"
	ClassBlocked     Class = "blocked"
)
