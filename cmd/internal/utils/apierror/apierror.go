package apierror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the JSON error body handlers return on failure; Code is
// the HTTP status to send it with.
type ErrorResponse interface {
	error
	Code() int
}

type simpleError struct {
	status  int
	Message string `json:"error"`
}

func (e *simpleError) Error() string { return e.Message }
func (e *simpleError) Code() int     { return e.status }

func NewSimple(code int, message string) ErrorResponse {
	return &simpleError{status: code, Message: message}
}

var (
	MalformedBodyError            = NewSimple(http.StatusBadRequest, "Malformed request body")
	NameEmailRequiredError        = NewSimple(http.StatusBadRequest, "Name and email are required")
	TimeParticipantsRequiredError = NewSimple(http.StatusBadRequest, "Time and participants required")
	HourMarkError                 = NewSimple(http.StatusBadRequest, "Meeting must start at the hour mark")
	EmailNotUniqueError           = NewSimple(http.StatusConflict, "Email must be unique")
	PersonNotFoundError           = NewSimple(http.StatusNotFound, "Person not found")
	NotFoundError                 = NewSimple(http.StatusNotFound, "Not Found")
	InternalServerError           = NewSimple(http.StatusInternalServerError, "Internal server error")
)

func NewMissingParamError(name string) ErrorResponse {
	return NewSimple(http.StatusBadRequest, fmt.Sprintf("Missing required parameter: %s", name))
}

// NewPersonMissingError names the first participant id that failed to
// resolve during booking.
func NewPersonMissingError(id string) ErrorResponse {
	return NewSimple(http.StatusNotFound, fmt.Sprintf("Person %s not found", id))
}

// NewSlotConflictError names the first participant already booked at the
// requested slot.
func NewSlotConflictError(id string) ErrorResponse {
	return NewSimple(http.StatusConflict, fmt.Sprintf("Person %s has a conflict at this time", id))
}

// FromValidationError turns a go-playground validation failure into a 400
// naming the first offending field.
func FromValidationError(err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return NewSimple(http.StatusBadRequest,
			fmt.Sprintf("Invalid value for field %s (%s)", first.Field(), first.Tag()))
	}
	return MalformedBodyError
}
