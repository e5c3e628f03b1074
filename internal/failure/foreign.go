package failure

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// bodyField names binding causes that do not belong to a single field.
const bodyField = "body"

// FromValidation converts validator.ValidationErrors into a FieldValidation
// failure. Any other error, nil included, is returned unchanged.
func FromValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	e := FieldValidation(validationFields(verrs)...)
	e.origin = errors.WithStack(err)

	return e
}

// FromBinding converts an error returned while decoding a request body into a
// Binding failure. JSON type mismatches are reported per field, every other
// cause as a single body entry. Nil stays nil.
func FromBinding(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := find(err, KindBinding); ok {
		return err
	}

	fields, ok := bindingFields(err)
	if !ok {
		fields = []FieldError{{Field: bodyField, Message: "malformed request body"}}
	}

	e := Binding(fields...)
	e.origin = errors.WithStack(err)

	return e
}

func validationFields(verrs validator.ValidationErrors) []FieldError {
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Message: describe(fe)})
	}

	return fields
}

// describe renders a readable message for a single validator rule.
func describe(fe validator.FieldError) string {
	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}

	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s%s", fe.Param(), unit)
	case "min":
		return fmt.Sprintf("must be at least %s%s", fe.Param(), unit)
	case "len":
		return fmt.Sprintf("must be exactly %s%s", fe.Param(), unit)
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

// bindingFields extracts field errors from JSON decoding failures anywhere in
// the chain.
func bindingFields(err error) ([]FieldError, bool) {
	if typeErr, ok := findAs[*json.UnmarshalTypeError](err); ok {
		field := typeErr.Field
		if field == "" {
			field = bodyField
		}

		return []FieldError{{
			Field:   field,
			Message: fmt.Sprintf("expected %s but got %s", jsonKind(typeErr.Type), typeErr.Value),
		}}, true
	}

	if syntaxErr, ok := findAs[*json.SyntaxError](err); ok {
		return []FieldError{{
			Field:   bodyField,
			Message: fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset),
		}}, true
	}

	return nil, false
}

// jsonKind names the JSON value a Go type decodes from, so details never
// carry Go type names.
func jsonKind(t reflect.Type) string {
	if t == nil {
		return "value"
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct, reflect.Map:
		return "object"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	default:
		return "value"
	}
}

// walk visits err and every error it wraps, depth first, until visit
// returns true.
func walk(err error, visit func(error) bool) bool {
	for err != nil {
		if visit(err) {
			return true
		}

		switch u := err.(type) { //nolint:errorlint // walking the chain by hand
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				if walk(inner, visit) {
					return true
				}
			}

			return false
		case interface{ Unwrap() error }:
			err = u.Unwrap()
		default:
			return false
		}
	}

	return false
}

// find returns the first tagged failure of the given kind in the chain.
func find(err error, kind Kind) (*Error, bool) {
	var found *Error

	ok := walk(err, func(e error) bool {
		fe, isFailure := e.(*Error) //nolint:errorlint // walk already unwraps
		if isFailure && fe.kind == kind {
			found = fe

			return true
		}

		return false
	})

	return found, ok
}

// findAs returns the first error of type T in the chain.
func findAs[T error](err error) (T, bool) {
	var found T

	ok := walk(err, func(e error) bool {
		t, match := e.(T) //nolint:errorlint // walk already unwraps
		if match {
			found = t
		}

		return match
	})

	return found, ok
}
