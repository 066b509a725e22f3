package failure

import (
	"errors"
	"net/http"
)

// Failure is an error the HTTP layer answers with Code and Message as they are. Errors that are
// not Failures are answered with 500.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	InvalidPageParam        = newFailure(http.StatusBadRequest, "invalid page parameter")
	InvalidLimitParam       = newFailure(http.StatusBadRequest, "invalid limit parameter")
	InvalidMonthFormat      = newFailure(http.StatusBadRequest, "month must be in YYYY-MM format between 2000-01 and 2100-12")
	InvalidID               = newFailure(http.StatusBadRequest, "id must be a valid UUID")
	ForbiddenError          = newFailure(http.StatusForbidden, "You don't have the required permissions")
	ResourceRestrictedError = newFailure(http.StatusForbidden, "You don't have permission to access this resource")
)

func newFailure(code int, message string) *Failure {
	return &Failure{Code: code, Message: message}
}

func (e *Failure) Error() string {
	return e.Message
}

// Is matches another Failure with the same code and message.
func (e *Failure) Is(target error) bool {
	var other *Failure
	if !errors.As(target, &other) {
		return false
	}

	return e.Code == other.Code && e.Message == other.Message
}

// BadRequest turns a validation error into a 400. A nil error stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return newFailure(http.StatusBadRequest, err.Error())
}

func BadRequestFromString(msg string) error {
	return newFailure(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) error {
	return newFailure(http.StatusUnauthorized, msg)
}

func Forbidden(msg string) error {
	return newFailure(http.StatusForbidden, msg)
}

func NotFound(entityName string) error {
	return newFailure(http.StatusNotFound, entityName)
}

func Conflict(message string) error {
	return newFailure(http.StatusConflict, message)
}

// InternalError turns err into a 500 carrying its message. A nil error stays nil.
func InternalError(err error) error {
	if err == nil {
		return nil
	}

	return newFailure(http.StatusInternalServerError, err.Error())
}

// DataIntegrity reports stored data that breaks a domain rule, such as a non-positive base price.
func DataIntegrity(msg string) error {
	return newFailure(http.StatusInternalServerError, "data integrity: "+msg)
}

func Unimplemented(methodName string) error {
	return newFailure(http.StatusNotImplemented, methodName)
}

// GetCode returns the HTTP code of err, 500 for anything that is not a Failure.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
