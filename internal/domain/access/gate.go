package access

// Decide runs the gate's fixed decision list. The order is a strict
// precedence, not independent conditions: an administrator with an expired
// trial still lands on DecisionAllow because rule 3 short-circuits.
//
//  1. unresolved session      -> pending
//  2. not authenticated       -> sign_in
//  3. administrator           -> allow
//  4. active sub OR trial     -> allow
//  5. otherwise               -> paywall
func Decide(resolved bool, f Flags) Decision {
	if !resolved {
		return DecisionPending
	}
	if !f.IsAuthenticated {
		return DecisionSignIn
	}
	if f.IsAdministrator {
		return DecisionAllow
	}
	if f.HasActiveSubscription || f.IsTrialActive {
		return DecisionAllow
	}
	return DecisionPaywall
}

// ClassOf reduces a flag set to the single effective access class.
// Same precedence as Decide; every consumer goes through here instead of
// recombining flags.
func ClassOf(f Flags) Class {
	switch {
	case !f.IsAuthenticated:
		return ClassAnonymous
	case f.IsAdministrator:
		return ClassAdminBypass
	case f.IsTrialActive:
		return ClassTrial
	case f.HasActiveSubscription:
		return ClassSubscriber
	default:
		return ClassBlocked
	}
}
