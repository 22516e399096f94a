package assignment

import (
	"net/http"

	"github.com/subassign/portal/srvcerror"
)

func newErrTitleEmpty() *srvcerror.Error {
	return srvcerror.New(
		srvcerror.ErrCodeValidation,
		"assignment title must not be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

func newErrDueDateMissing() *srvcerror.Error {
	return srvcerror.New(
		srvcerror.ErrCodeValidation,
		"assignment due date is required",
	).SetHttpStatusCode(http.StatusBadRequest)
}

func newErrAssignmentNotFound() *srvcerror.Error {
	return srvcerror.New(
		srvcerror.ErrCodeNotFound,
		"assignment was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}
