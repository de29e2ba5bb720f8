package panel

import (
	"errors"
	"fmt"
	"net/http"
)

// NotFoundError is returned when a referenced entity does not exist.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// StatusCode returns the HTTP status code for this error.
func (e *NotFoundError) StatusCode() int {
	return http.StatusNotFound
}

// ValidationError is returned for missing required fields and
// business-rule violations.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status code for this error.
func (e *ValidationError) StatusCode() int {
	return http.StatusBadRequest
}

// UnauthorizedError is returned when no session is present or
// credentials are invalid.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	if e.Message == "" {
		return "Unauthorized"
	}
	return e.Message
}

// StatusCode returns the HTTP status code for this error.
func (e *UnauthorizedError) StatusCode() int {
	return http.StatusUnauthorized
}

// StatusCodeError is implemented by errors that carry an HTTP status.
type StatusCodeError interface {
	error
	StatusCode() int
}

// ErrorBody is the wire shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

// fail converts an error into the (status, body) pair handlers return.
// Errors without a status code map to 500.
func fail(err error) (int, any) {
	status := http.StatusInternalServerError
	var sc StatusCodeError
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}
	return status, ErrorBody{Error: err.Error()}
}

func notFound(resource string) (int, any) {
	return fail(&NotFoundError{Resource: resource})
}

func badRequest(message string) (int, any) {
	return fail(&ValidationError{Message: message})
}

func unauthorized(message string) (int, any) {
	return fail(&UnauthorizedError{Message: message})
}
