package srvcerror

import (
	"errors"
	"net/http"
)

type Error struct {
	errorCode  string
	msgToUser  string // public
	dbgInfoErr error  // private, for debugging

	httpStatus int // optional, for HTTP responses
}

func (e *Error) Error() string {
	return e.msgToUser
}

func (e *Error) ErrorCode() string {
	return e.errorCode
}

func (e *Error) DebugInfo() error {
	return e.dbgInfoErr
}

func (e *Error) SetDebug(err error) *Error {
	e.dbgInfoErr = err
	return e
}

func (e *Error) HttpStatusCode() int {
	if e.httpStatus == 0 {
		return http.StatusInternalServerError
	}
	return e.httpStatus
}

func (e *Error) SetHttpStatusCode(code int) *Error {
	e.httpStatus = code
	return e
}

func New(errorCode string, msgToUser string) *Error {
	return &Error{
		errorCode: errorCode,
		msgToUser: msgToUser,
	}
}

// Error codes shared across services. Callers use these to tell apart
// business-rule rejections from operations that could not be attempted.
const (
	ErrCodeValidation          = "validation_error"
	ErrCodeNotFound            = "not_found"
	ErrCodeAuthentication      = "authentication_failed"
	ErrCodeForbidden           = "forbidden"
	ErrCodeNetwork             = "network_error"
	ErrCodeInternalServerError = "internal_server_error"
)

func ErrInternalSE() *Error {
	return New(
		ErrCodeInternalServerError,
		"internal server error",
	).SetHttpStatusCode(http.StatusInternalServerError)
}

func hasCode(err error, code string) bool {
	srvcErr := &Error{}
	if errors.As(err, &srvcErr) {
		return srvcErr.ErrorCode() == code
	}
	return false
}

func IsValidation(err error) bool {
	return hasCode(err, ErrCodeValidation)
}

func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeNotFound)
}

func IsAuthentication(err error) bool {
	return hasCode(err, ErrCodeAuthentication)
}

func IsForbidden(err error) bool {
	return hasCode(err, ErrCodeForbidden)
}

func IsNetwork(err error) bool {
	return hasCode(err, ErrCodeNetwork)
}
