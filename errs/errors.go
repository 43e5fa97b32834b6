package errs

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

type ErrType string

const (
	INTERNAL_ERROR  ErrType = "INTERNAL ERROR"
	BAD_INPUT_ERROR ErrType = "BAD INPUT ERROR"
	NOT_FOUND_ERROR ErrType = "NOT FOUND ERROR"
	UNKNOWN_ERROR   ErrType = "UNKNOWN ERROR"
)

// InternalError is a failure on our side: encoding, transport, I/O.
type InternalError struct {
	message string
	wrapped error
}

func NewInternalError(message string) *InternalError {
	return &InternalError{
		message: message,
	}
}

func (e *InternalError) Wrap(err error) error {
	e.wrapped = err
	return e
}

func (e *InternalError) Error() string {
	return format(e.message, e.wrapped)
}

func (e *InternalError) Unwrap() error {
	return e.wrapped
}

// BadInputError is caused by what the user typed.
type BadInputError struct {
	message string
	wrapped error
}

func NewBadInputError(message string) *BadInputError {
	return &BadInputError{
		message: message,
	}
}

func (e *BadInputError) Wrap(err error) error {
	e.wrapped = err
	return e
}

func (e *BadInputError) Error() string {
	return format(e.message, e.wrapped)
}

func (e *BadInputError) Unwrap() error {
	return e.wrapped
}

// NotFoundError reports a counter session that does not exist or has expired.
type NotFoundError struct {
	message string
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		message: message,
	}
}

func (e *NotFoundError) Error() string {
	return e.message
}

func format(message string, wrapped error) string {
	if wrapped == nil {
		return message
	}
	return message + ": " + wrapped.Error()
}

// TypeOf classifies err.
func TypeOf(err error) ErrType {
	var internalErr *InternalError
	var badInputErr *BadInputError
	var notFoundErr *NotFoundError
	switch {
	case errors.As(err, &badInputErr):
		return BAD_INPUT_ERROR
	case errors.As(err, &notFoundErr):
		return NOT_FOUND_ERROR
	case errors.As(err, &internalErr):
		return INTERNAL_ERROR
	default:
		return UNKNOWN_ERROR
	}
}

// StatusCode maps err to the HTTP status it should be answered with.
func StatusCode(err error) int {
	switch TypeOf(err) {
	case BAD_INPUT_ERROR:
		return http.StatusBadRequest
	case NOT_FOUND_ERROR:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// HandleError prints err to w, tagged and in red.
func HandleError(w io.Writer, err error) {
	fmt.Fprintf(w, "\n\033[31m[%s]\n %s\033[0m\n\n", TypeOf(err), err.Error())
}
