package client

import (
	"net/http"

	"github.com/subassign/portal/srvcerror"
)

func newErrUnreachable(err error) *srvcerror.Error {
	return srvcerror.New(
		srvcerror.ErrCodeNetwork,
		"could not reach the assignment service",
	).SetDebug(err)
}

func newErrBadResponse(err error) *srvcerror.Error {
	return srvcerror.New(
		srvcerror.ErrCodeNetwork,
		"received a malformed response from the assignment service",
	).SetDebug(err)
}

// newErrFromEnvelope rebuilds a service error from the wire envelope so
// that the caller sees the same taxonomy code the server emitted. A 401
// without a parseable code still counts as an authentication failure so
// the session can be cleared.
func newErrFromEnvelope(statusCode int, errCode, errMsg string) *srvcerror.Error {
	if errCode == "" {
		if statusCode == http.StatusUnauthorized {
			errCode = srvcerror.ErrCodeAuthentication
		} else {
			errCode = srvcerror.ErrCodeNetwork
		}
	}
	if errMsg == "" {
		errMsg = http.StatusText(statusCode)
	}
	return srvcerror.New(errCode, errMsg).SetHttpStatusCode(statusCode)
}
