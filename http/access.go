package http

import (
	"net/http"

	"github.com/subassign/portal/auth"
	"github.com/subassign/portal/srvcerror"
)

func newErrNotLoggedIn() *srvcerror.Error {
	return srvcerror.New(
		srvcerror.ErrCodeAuthentication,
		"authentication required",
	).SetHttpStatusCode(http.StatusUnauthorized)
}

func newErrRoleRequired(role auth.Role) *srvcerror.Error {
	return srvcerror.New(
		srvcerror.ErrCodeForbidden,
		"this action requires the "+role.String()+" role",
	).SetHttpStatusCode(http.StatusForbidden)
}

// requireRole returns the caller's claims if a token was presented and
// carries the wanted role. A nil wanted role only requires login.
func requireRole(r *http.Request, wanted *auth.Role) (*auth.JwtClaims, error) {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		return nil, newErrNotLoggedIn()
	}
	if wanted != nil && claims.Role != *wanted {
		return nil, newErrRoleRequired(*wanted)
	}
	return claims, nil
}

func instructorOnly(r *http.Request) (*auth.JwtClaims, error) {
	role := auth.RoleInstructor
	return requireRole(r, &role)
}
