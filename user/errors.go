package user

import (
	"fmt"
	"net/http"

	"github.com/subassign/portal/srvcerror"
)

func newErrNameTooShort(minLength int) *srvcerror.Error {
	return srvcerror.New(
		srvcerror.ErrCodeValidation,
		fmt.Sprintf("name must be at least %d characters long", minLength),
	).SetHttpStatusCode(http.StatusBadRequest)
}

func newErrNameTooLong(maxLength int) *srvcerror.Error {
	return srvcerror.New(
		srvcerror.ErrCodeValidation,
		fmt.Sprintf("name must not exceed %d characters", maxLength),
	).SetHttpStatusCode(http.StatusBadRequest)
}

func newErrEmailEmpty() *srvcerror.Error {
	return srvcerror.New(
		srvcerror.ErrCodeValidation,
		"email must not be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

func newErrEmailInvalid() *srvcerror.Error {
	return srvcerror.New(
		srvcerror.ErrCodeValidation,
		"email is not valid",
	).SetHttpStatusCode(http.StatusBadRequest)
}

func newErrEmailExists() *srvcerror.Error {
	return srvcerror.New(
		srvcerror.ErrCodeValidation,
		"email is already registered",
	).SetHttpStatusCode(http.StatusConflict)
}

func newErrPasswordTooShort(minLength int) *srvcerror.Error {
	return srvcerror.New(
		srvcerror.ErrCodeValidation,
		fmt.Sprintf("password must be at least %d characters long", minLength),
	).SetHttpStatusCode(http.StatusBadRequest)
}

func newErrPasswordTooLong() *srvcerror.Error {
	return srvcerror.New(
		srvcerror.ErrCodeValidation,
		"password is too long",
	).SetHttpStatusCode(http.StatusBadRequest)
}

func newErrInvalidRole() *srvcerror.Error {
	return srvcerror.New(
		srvcerror.ErrCodeValidation,
		"role must be either student or instructor",
	).SetHttpStatusCode(http.StatusBadRequest)
}

func newErrEmailOrPasswordIncorrect() *srvcerror.Error {
	return srvcerror.New(
		srvcerror.ErrCodeAuthentication,
		"email or password is incorrect",
	).SetHttpStatusCode(http.StatusUnauthorized)
}

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}
