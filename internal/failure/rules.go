package failure

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Fixed messages that never echo the underlying cause.
const (
	MessageAuthenticationFailed   = "Authentication failed"
	MessageAuthenticationRequired = "Authentication required"
	MessageAccessDenied           = "Access denied"
	MessageValidationFailed       = "Validation failed"
	MessageBindingFailed          = "Binding failed"
	MessageInternal               = "An unexpected error occurred"
)

// response is the outcome of a rule before it becomes an envelope.
type response struct {
	status  int
	code    Code
	message string
	details []string
}

// rule pairs a failure category with its response mapping.
type rule struct {
	name    string
	match   func(err error) bool
	respond func(err error) response
}

// rules is the classification table, most specific first. It is never
// modified after package initialisation.
var rules = []rule{
	{
		name:  KindArgument.String(),
		match: isKind(KindArgument),
		respond: func(err error) response {
			e, _ := find(err, KindArgument)

			return response{status: http.StatusBadRequest, code: CodeInvalidArgument, message: e.message}
		},
	},
	{
		name:  KindBusiness.String(),
		match: isKind(KindBusiness),
		respond: func(err error) response {
			e, _ := find(err, KindBusiness)

			return response{status: e.StatusCode(), code: e.Code(), message: e.message}
		},
	},
	{
		name:    KindAuthentication.String(),
		match:   isKind(KindAuthentication),
		respond: fixed(http.StatusUnauthorized, CodeAuthenticationFailed, MessageAuthenticationFailed),
	},
	{
		name:    KindNotAuthenticated.String(),
		match:   isKind(KindNotAuthenticated),
		respond: fixed(http.StatusUnauthorized, CodeAuthenticationRequired, MessageAuthenticationRequired),
	},
	{
		name:  KindIllegalState.String(),
		match: isKind(KindIllegalState),
		respond: func(err error) response {
			e, _ := find(err, KindIllegalState)

			return response{status: http.StatusBadRequest, code: CodeIllegalState, message: e.message}
		},
	},
	{
		name:    KindAccessDenied.String(),
		match:   isKind(KindAccessDenied),
		respond: fixed(http.StatusForbidden, CodeAccessDenied, MessageAccessDenied),
	},
	{
		name: KindFieldValidation.String(),
		match: func(err error) bool {
			if isKind(KindFieldValidation)(err) {
				return true
			}

			_, ok := findAs[validator.ValidationErrors](err)

			return ok
		},
		respond: func(err error) response {
			var fields []FieldError

			if e, ok := find(err, KindFieldValidation); ok {
				fields = e.fields
			} else if verrs, ok := findAs[validator.ValidationErrors](err); ok {
				fields = validationFields(verrs)
			}

			return response{
				status:  http.StatusBadRequest,
				code:    CodeValidation,
				message: MessageValidationFailed,
				details: formatFields(fields),
			}
		},
	},
	{
		name: KindBinding.String(),
		match: func(err error) bool {
			if isKind(KindBinding)(err) {
				return true
			}

			if _, ok := findAs[*json.UnmarshalTypeError](err); ok {
				return true
			}

			_, ok := findAs[*json.SyntaxError](err)

			return ok
		},
		respond: func(err error) response {
			var fields []FieldError

			if e, ok := find(err, KindBinding); ok {
				fields = e.fields
			} else {
				fields, _ = bindingFields(err)
			}

			return response{
				status:  http.StatusBadRequest,
				code:    CodeBinding,
				message: MessageBindingFailed,
				details: formatFields(fields),
			}
		},
	},
	{
		name:    "unclassified",
		match:   func(error) bool { return true },
		respond: fixed(http.StatusInternalServerError, CodeInternal, MessageInternal),
	},
}

func isKind(kind Kind) func(error) bool {
	return func(err error) bool {
		_, ok := find(err, kind)

		return ok
	}
}

func fixed(status int, code Code, message string) func(error) response {
	return func(error) response {
		return response{status: status, code: code, message: message}
	}
}

func formatFields(fields []FieldError) []string {
	if len(fields) == 0 {
		return nil
	}

	details := make([]string, 0, len(fields))
	for _, f := range fields {
		details = append(details, f.String())
	}

	return details
}
