package utils

import (
	"fmt"
	"net/http"
)

// HTTPError is a failure that maps onto an HTTP status. Message is either a
// catalog key (e.g. "users.not_found") or literal text; Params fill its
// placeholders when it is translated.
type HTTPError struct {
	Status  int
	Message string
	Params  map[string]string
	Errors  map[string][]string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

// NewNotFound reports a missing entity (404)
func NewNotFound(message string) *HTTPError {
	return &HTTPError{Status: http.StatusNotFound, Message: message}
}

// NewConflict reports a uniqueness violation (409)
func NewConflict(message string, params map[string]string) *HTTPError {
	return &HTTPError{Status: http.StatusConflict, Message: message, Params: params}
}

// NewBadRequest reports a malformed request such as a non numeric id (400)
func NewBadRequest(message string) *HTTPError {
	return &HTTPError{Status: http.StatusBadRequest, Message: message}
}

// NewUnprocessable reports a single invalid field (422)
func NewUnprocessable(field, message string) *HTTPError {
	return NewValidationError(map[string][]string{field: {message}})
}

// NewValidationError reports field level validation failures (422)
func NewValidationError(fields map[string][]string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusUnprocessableEntity,
		Message: "validation.invalid_data",
		Errors:  fields,
	}
}
