// Package failure carries the HTTP status a service error should surface as.
package failure

import (
	"errors"
	"net/http"
)

// Failure is an error the client caused or must see verbatim. Message is safe to return.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	MissingTokenError = New(http.StatusUnauthorized, "Access denied. No token provided.")
	InvalidTokenError = New(http.StatusUnauthorized, "Invalid token.")
)

func New(code int, message string) *Failure {
	return &Failure{Code: code, Message: message}
}

func (e *Failure) Error() string {
	return e.Message
}

// BadRequest converts err into a 400. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return New(http.StatusBadRequest, err.Error())
}

func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) error {
	return New(http.StatusUnauthorized, msg)
}

// NotFound is also returned for rows that exist but belong to another user.
func NotFound(msg string) error {
	return New(http.StatusNotFound, msg)
}

func Conflict(msg string) error {
	return New(http.StatusConflict, msg)
}

// Is reports whether err carries a Failure with the given code.
func Is(err error, code int) bool {
	var fail *Failure

	return errors.As(err, &fail) && fail.Code == code
}

// GetCode returns the code of the Failure in err's chain, or 500.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
