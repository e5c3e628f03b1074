package failure

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// notAuthenticatedMarker is the text StateFromMessage looks for.
const notAuthenticatedMarker = "not authenticated"

// Valid HTTP status range of a business failure.
const (
	minStatus = 100
	maxStatus = 599
)

// FieldError is one invalid field of a payload.
type FieldError struct {
	Field   string
	Message string
}

// String formats the field error as "<field>: <message>".
func (f FieldError) String() string {
	return f.Field + ": " + f.Message
}

// Error is a tagged failure raised deliberately by business, validation or
// binding code. The zero value is not usable, use the constructors.
type Error struct {
	kind    Kind
	message string
	status  int
	code    Code
	fields  []FieldError
	origin  error
}

// Argument returns a failure for malformed or missing caller input.
func Argument(message string) *Error {
	return newError(KindArgument, message, nil)
}

// Business returns a domain rule failure. A zero status defaults to 400 and
// an empty code defaults to BUSINESS_ERROR.
func Business(message string, status int, code Code) *Error {
	e := newError(KindBusiness, message, nil)
	e.status = status
	e.code = code

	return e
}

// Authentication returns a failure for rejected or unknown credentials.
// The cause is kept for logging and errors.Is, it never reaches the caller.
func Authentication(cause error) *Error {
	if cause == nil {
		return newError(KindAuthentication, "authentication failed", nil)
	}

	return newError(KindAuthentication, cause.Error(), cause)
}

// NotAuthenticated returns a failure for an operation that needs an
// authenticated caller.
func NotAuthenticated(message string) *Error {
	return newError(KindNotAuthenticated, message, nil)
}

// IllegalState returns a failure for an operation that is invalid in the
// current state.
func IllegalState(message string) *Error {
	return newError(KindIllegalState, message, nil)
}

// StateFromMessage builds a state failure from a collaborator that can only
// report text. A message containing "not authenticated" becomes a
// NotAuthenticated failure, anything else an IllegalState failure.
func StateFromMessage(message string) *Error {
	if strings.Contains(message, notAuthenticatedMarker) {
		return NotAuthenticated(message)
	}

	return IllegalState(message)
}

// AccessDenied returns a failure for an identity without sufficient privilege.
func AccessDenied(message string) *Error {
	return newError(KindAccessDenied, message, nil)
}

// FieldValidation returns a failure listing every invalid field in
// evaluation order.
func FieldValidation(fields ...FieldError) *Error {
	e := newError(KindFieldValidation, "validation failed", nil)
	e.fields = append([]FieldError(nil), fields...)

	return e
}

// Binding returns a failure for a request that could not be parsed into the
// expected shape, one field error per cause.
func Binding(fields ...FieldError) *Error {
	e := newError(KindBinding, "binding failed", nil)
	e.fields = append([]FieldError(nil), fields...)

	return e
}

func newError(kind Kind, message string, cause error) *Error {
	var origin error

	if cause != nil {
		origin = errors.WithStack(cause)
	} else {
		origin = errors.New(message)
	}

	return &Error{
		kind:    kind,
		message: message,
		origin:  origin,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.fields) == 0 {
		return e.message
	}

	parts := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		parts = append(parts, f.String())
	}

	return fmt.Sprintf("%s: %s", e.message, strings.Join(parts, "; "))
}

// Unwrap returns the origin of the failure, which carries the stack trace
// and, for authentication failures, the original cause.
func (e *Error) Unwrap() error {
	return e.origin
}

// Kind returns the tag of the failure.
func (e *Error) Kind() Kind {
	return e.kind
}

// Message returns the message the failure was raised with.
func (e *Error) Message() string {
	return e.message
}

// StatusCode returns the HTTP status of a business failure, 400 if unset or
// outside the valid status range.
func (e *Error) StatusCode() int {
	if e.status < minStatus || e.status > maxStatus {
		return http.StatusBadRequest
	}

	return e.status
}

// Code returns the error code of a business failure, BUSINESS_ERROR if unset.
func (e *Error) Code() Code {
	if e.code == "" {
		return CodeBusiness
	}

	return e.code
}

// Fields returns a copy of the field errors.
func (e *Error) Fields() []FieldError {
	return append([]FieldError(nil), e.fields...)
}
