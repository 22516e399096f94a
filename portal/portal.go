// Package portal holds the client-side workflow state behind the UI:
// the assignment collection with its filters and the submission board
// with its grading flow. Both talk to the remote API only through the
// Domain Client and never let its errors escape unhandled.
package portal

import (
	"github.com/subassign/portal/session"
	"github.com/subassign/portal/srvcerror"
)

// surface routes a client error back to the caller. An authentication
// failure on any call after login means the token went stale: the
// session is cleared so the gate redirects to the login view.
func surface(sessions *session.Store, err error) error {
	if err == nil {
		return nil
	}
	if srvcerror.IsAuthentication(err) {
		sessions.Logout()
	}
	return err
}
