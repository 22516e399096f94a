package session

import (
	"github.com/subassign/portal/auth"
	"github.com/subassign/portal/client"
)

// Snapshot is an immutable view of the session at decision time.
type Snapshot struct {
	Loading  bool
	Identity *client.Identity
}

// Decision is what the authorization gate tells the caller to do with a
// protected view.
type Decision int

const (
	// DecisionWait: rehydration has not resolved yet; render a neutral
	// waiting state and ask again.
	DecisionWait Decision = iota
	DecisionAllow
	DecisionRedirectToLogin
	DecisionRedirectToDefault
)

// CanAccess decides whether a view gated on requiredRole may render.
// Pure and deterministic: same snapshot and role, same decision.
func CanAccess(snap Snapshot, requiredRole *auth.Role) Decision {
	if snap.Loading {
		return DecisionWait
	}
	if snap.Identity == nil {
		return DecisionRedirectToLogin
	}
	if requiredRole != nil && snap.Identity.Role != *requiredRole {
		return DecisionRedirectToDefault
	}
	return DecisionAllow
}
