package submission

import (
	"net/http"

	"github.com/subassign/portal/srvcerror"
)

func newErrContentEmpty() *srvcerror.Error {
	return srvcerror.New(
		srvcerror.ErrCodeValidation,
		"submission content must not be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

func newErrAssignmentNotFound() *srvcerror.Error {
	return srvcerror.New(
		srvcerror.ErrCodeValidation,
		"submission references an unknown assignment",
	).SetHttpStatusCode(http.StatusBadRequest)
}

func newErrSubmissionNotFound() *srvcerror.Error {
	return srvcerror.New(
		srvcerror.ErrCodeNotFound,
		"submission was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

func newErrGradeOutOfRange() *srvcerror.Error {
	return srvcerror.New(
		srvcerror.ErrCodeValidation,
		"grade must be between 0 and 100",
	).SetHttpStatusCode(http.StatusBadRequest)
}

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}
