package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide_PendingBeforeFlags(t *testing.T) {
	// While unresolved, flags are not consulted at all
	f := Flags{IsAuthenticated: true, IsAdministrator: true}
	assert.Equal(t, DecisionPending, Decide(false, f))
	assert.Equal(t, DecisionPending, Decide(false, Flags{}))
}

func TestDecide_Anonymous(t *testing.T) {
	assert.Equal(t, DecisionSignIn, Decide(true, Flags{}))
}

func TestDecide_AdminShortCircuitsPaywall(t *testing.T) {
	// Expired-trial admin still gets content: rule 3 runs before rule 5
	f := Flags{IsAuthenticated: true, IsAdministrator: true, HasActiveSubscription: true}
	assert.Equal(t, DecisionAllow, Decide(true, f))
}

func TestDecide_SubscriptionTrialTruthTable(t *testing.T) {
	// Rule 4 is an OR: all four combinations of sub x trial
	tests := []struct {
		sub, trial bool
		want       Decision
	}{
		{false, false, DecisionPaywall},
		{true, false, DecisionAllow},
		{false, true, DecisionAllow},
		{true, true, DecisionAllow},
	}
	for _, tt := range tests {
		f := Flags{IsAuthenticated: true, HasActiveSubscription: tt.sub, IsTrialActive: tt.trial}
		assert.Equal(t, tt.want, Decide(true, f), "sub=%v trial=%v", tt.sub, tt.trial)
	}
}

func TestClassOf_ExactlyOneClass(t *testing.T) {
	tests := []struct {
		name string
		f    Flags
		want Class
	}{
		{"anonymous", Flags{}, ClassAnonymous},
		{"admin outranks everything", Flags{IsAuthenticated: true, IsAdministrator: true, HasActiveSubscription: true}, ClassAdminBypass},
		{"trial", Flags{IsAuthenticated: true, IsTrialActive: true}, ClassTrial},
		{"subscriber", Flags{IsAuthenticated: true, HasActiveSubscription: true}, ClassSubscriber},
		{"trial and subscription resolves to trial", Flags{IsAuthenticated: true, IsTrialActive: true, HasActiveSubscription: true}, ClassTrial},
		{"blocked", Flags{IsAuthenticated: true, NeedsPayment: true}, ClassBlocked},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassOf(tt.f))
		})
	}
}
