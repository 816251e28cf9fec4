package access

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/subscription"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/users"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func ptr(t time.Time) *time.Time { return &t }

func TestComputeFlags_NilPrincipal(t *testing.T) {
	f := ComputeFlags(now, nil)
	assert.Equal(t, Flags{}, f)
	assert.False(t, f.IsAuthenticated)
	assert.False(t, f.NeedsPayment, "anonymous sessions are not payment-blocked, just signed out")
}

func TestComputeFlags_AdminBypass(t *testing.T) {
	// Admins get an active subscription regardless of any timestamps,
	// including an expired trial and expired subscription end.
	yesterday := ptr(now.AddDate(0, 0, -1))
	for _, p := range []Principal{
		{ID: "1", Role: RoleAdmin, Status: subscription.StatusExpired},
		{ID: "2", Role: RoleAdmin, Status: subscription.StatusExpired, TrialEndAt: yesterday},
		{ID: "3", Role: RoleAdmin, Status: subscription.StatusActive, SubEndAt: yesterday},
	} {
		f := ComputeFlags(now, &p)
		assert.True(t, f.HasActiveSubscription, "principal %s", p.ID)
		assert.True(t, f.IsPremium, "principal %s", p.ID)
		assert.False(t, f.NeedsPayment, "principal %s", p.ID)
	}
}

func TestComputeFlags_NoTimestampsNeedsPayment(t *testing.T) {
	p := Principal{ID: "7", Role: RoleUser, Status: subscription.StatusNone}
	f := ComputeFlags(now, &p)
	assert.True(t, f.IsAuthenticated)
	assert.False(t, f.IsTrialActive)
	assert.False(t, f.HasActiveSubscription)
	assert.True(t, f.NeedsPayment)
}

func TestComputeFlags_TrialBoundaryIsStrict(t *testing.T) {
	// An expiry exactly equal to "now" is already expired
	p := Principal{ID: "7", Role: RoleUser, Status: subscription.StatusTrialing, TrialEndAt: ptr(now)}
	f := ComputeFlags(now, &p)
	assert.False(t, f.IsTrialActive)

	p.TrialEndAt = ptr(now.Add(time.Nanosecond))
	assert.True(t, ComputeFlags(now, &p).IsTrialActive)
}

func TestComputeFlags_SubscriptionBoundaryIsStrict(t *testing.T) {
	p := Principal{ID: "7", Role: RoleUser, Status: subscription.StatusActive, SubEndAt: ptr(now)}
	assert.False(t, ComputeFlags(now, &p).HasActiveSubscription)

	p.SubEndAt = ptr(now.Add(time.Second))
	assert.True(t, ComputeFlags(now, &p).HasActiveSubscription)
}

func TestComputeFlags_ActiveStatusWithoutEndDate(t *testing.T) {
	// status=active but no end timestamp -> not an active subscription
	p := Principal{ID: "7", Role: RoleUser, Status: subscription.StatusActive}
	f := ComputeFlags(now, &p)
	assert.False(t, f.HasActiveSubscription)
	assert.True(t, f.NeedsPayment)
}

func TestComputeFlags_OrganizationLabelIsPremium(t *testing.T) {
	p := Principal{ID: "9", Role: RoleUser, Status: "organization"}
	f := ComputeFlags(now, &p)
	assert.True(t, f.IsPremium)
	// premium label alone does not count as an active paid subscription
	assert.False(t, f.HasActiveSubscription)
}

func TestComputeFlags_Idempotent(t *testing.T) {
	p := Principal{
		ID:         "42",
		Role:       RoleUser,
		Status:     subscription.StatusActive,
		TrialEndAt: ptr(now.AddDate(0, 0, -3)),
		SubEndAt:   ptr(now.AddDate(0, 0, 20)),
	}
	first := ComputeFlags(now, &p)
	second := ComputeFlags(now, &p)
	assert.Equal(t, first, second)
}

func TestComputeFlags_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		p    Principal
		want Flags
	}{
		{
			name: "regular trialing with 5 days left",
			p:    Principal{ID: "a", Role: RoleUser, Status: subscription.StatusTrialing, TrialEndAt: ptr(now.AddDate(0, 0, 5))},
			want: Flags{IsAuthenticated: true, IsTrialActive: true},
		},
		{
			name: "regular active with 20 days left",
			p:    Principal{ID: "b", Role: RoleUser, Status: subscription.StatusActive, SubEndAt: ptr(now.AddDate(0, 0, 20))},
			want: Flags{IsAuthenticated: true, HasActiveSubscription: true, IsPremium: true},
		},
		{
			name: "regular expired with trial ended yesterday",
			p:    Principal{ID: "c", Role: RoleUser, Status: subscription.StatusExpired, TrialEndAt: ptr(now.AddDate(0, 0, -1))},
			want: Flags{IsAuthenticated: true, NeedsPayment: true},
		},
		{
			name: "admin with expired status",
			p:    Principal{ID: "e", Role: RoleAdmin, Status: subscription.StatusExpired},
			want: Flags{IsAuthenticated: true, IsAdministrator: true, HasActiveSubscription: true, IsPremium: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeFlags(now, &tt.p))
		})
	}
}

func TestFromUser(t *testing.T) {
	status := "Active"
	end := now.AddDate(0, 0, 10)
	u := users.User{
		ID:                 12,
		Name:               "",
		Email:              "sana@example.com",
		Role:               RoleUser,
		SubscriptionStatus: &status,
		SubscriptionEnd:    &end,
	}
	p := FromUser(u)
	assert.Equal(t, "12", p.ID)
	assert.Empty(t, p.DisplayName, "empty name stays empty so the session layer can apply its metadata fallback")
	assert.Equal(t, subscription.StatusActive, p.Status, "status is normalized")
	require.NotNil(t, p.SubEndAt)

	u.Name = "Sana"
	assert.Equal(t, "Sana", FromUser(u).DisplayName)
}

func TestDefaultPrincipal(t *testing.T) {
	p := DefaultPrincipal("31", "Ali")
	f := ComputeFlags(now, &p)
	// conservative default: signed in, no elevated access, no trial window
	assert.True(t, f.IsAuthenticated)
	assert.False(t, f.IsTrialActive)
	assert.False(t, f.HasActiveSubscription)
	assert.True(t, f.NeedsPayment)
}
