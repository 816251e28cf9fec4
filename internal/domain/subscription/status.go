package subscription

import "strings"

// Status constants (single source of truth)
const (
	StatusNone      = "none"
	StatusTrialing  = "trialing"
	StatusActive    = "active"
	StatusExpired   = "expired"
	StatusCancelled = "cancelled"
)

// Elevated plan labels that grant premium access on their own.
// The status column is free text in the store, so new tiers get added
// HERE, not guessed at call sites.
var premiumStatusLabels = map[string]bool{
	"organization": true,
}

// NormalizeStatus maps the free-text subscription_status column onto the
// known enumeration. Unknown labels pass through lowercased so premium
// labels like "organization" survive.
func NormalizeStatus(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return StatusNone
	}
	switch strings.ToLower(strings.TrimSpace(*s)) {
	case "trialing", "trial":
		return StatusTrialing
	case "active":
		return StatusActive
	case "expired", "past_due", "unpaid":
		return StatusExpired
	case "cancelled", "canceled", "incomplete_expired":
		return StatusCancelled
	default:
		return strings.ToLower(strings.TrimSpace(*s))
	}
}

// IsPremiumLabel reports whether a normalized status is one of the
// elevated labels reserved for organization-tier accounts.
func IsPremiumLabel(status string) bool {
	return premiumStatusLabels[status]
}
