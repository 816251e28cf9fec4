package access

import (
	"fmt"
	"time"

	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/subscription"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/users"
)

// FromUser builds the Principal snapshot from a profile row. The display
// name is left empty when the row has none; the session layer fills it
// from its own metadata (token name claim, then email).
func FromUser(u users.User) Principal {
	return Principal{
		ID:          fmt.Sprint(u.ID),
		DisplayName: u.Name,
		Role:        u.Role,
		Status:      subscription.NormalizeStatus(u.SubscriptionStatus),
		TrialEndAt:  u.TrialEndAt,
		SubEndAt:    u.SubscriptionEnd,
	}
}

// DefaultPrincipal is what a session degrades to when the profile row is
// missing (provisioning lag) or the fetch failed. Baseline access only;
// never an error to the caller.
func DefaultPrincipal(id, displayName string) Principal {
	return Principal{
		ID:          id,
		DisplayName: displayName,
		Role:        RoleUser,
		Status:      subscription.StatusTrialing,
	}
}

// ComputeFlags is the one place access booleans are derived. Pure and
// total: nil Principal means anonymous, missing timestamps mean false.
// Time is an explicit input; callers pass time.Now() exactly once.
func ComputeFlags(now time.Time, p *Principal) Flags {
	if p == nil {
		return Flags{}
	}

	isAdmin := p.Role == RoleAdmin

	// Strictly in the future: an expiry equal to now is already expired
	trialActive := p.TrialEndAt != nil && now.Before(*p.TrialEndAt)

	activeSub := isAdmin ||
		(p.Status == subscription.StatusActive && p.SubEndAt != nil && now.Before(*p.SubEndAt))

	return Flags{
		IsAuthenticated:       true,
		IsAdministrator:       isAdmin,
		IsTrialActive:         trialActive,
		HasActiveSubscription: activeSub,
		NeedsPayment:          !trialActive && !activeSub && !isAdmin,
		IsPremium:             activeSub || subscription.IsPremiumLabel(p.Status),
	}
}
