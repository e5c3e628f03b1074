package failure

// Code is the machine readable error code of an envelope.
type Code string

const (
	// CodeInvalidArgument is used for malformed or missing caller input.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	// CodeBusiness is the default code of a business failure.
	CodeBusiness Code = "BUSINESS_ERROR"
	// CodeAuthenticationFailed is used when credentials were rejected.
	CodeAuthenticationFailed Code = "AUTHENTICATION_FAILED"
	// CodeAuthenticationRequired is used when an operation needs an authenticated caller.
	CodeAuthenticationRequired Code = "AUTHENTICATION_REQUIRED"
	// CodeIllegalState is used when an operation is invalid in the current state.
	CodeIllegalState Code = "ILLEGAL_STATE"
	// CodeAccessDenied is used when the caller lacks the required privilege.
	CodeAccessDenied Code = "ACCESS_DENIED"
	// CodeValidation is used when a payload failed declarative validation rules.
	CodeValidation Code = "VALIDATION_ERROR"
	// CodeBinding is used when a request could not be parsed into the expected shape.
	CodeBinding Code = "BINDING_ERROR"
	// CodeInternal is used for every unclassified failure.
	CodeInternal Code = "INTERNAL_ERROR"
)

// Kind tags a failure variant.
type Kind int

const (
	// KindArgument is malformed caller input without domain semantics.
	KindArgument Kind = iota + 1
	// KindBusiness is a violated domain rule carrying its own status and code.
	KindBusiness
	// KindAuthentication is an identity that was rejected.
	KindAuthentication
	// KindNotAuthenticated is an operation attempted before authentication.
	KindNotAuthenticated
	// KindIllegalState is an operation invalid in the current state.
	KindIllegalState
	// KindAccessDenied is an authenticated identity without sufficient privilege.
	KindAccessDenied
	// KindFieldValidation is a per field rule violation of a payload.
	KindFieldValidation
	// KindBinding is a request shape or type mismatch.
	KindBinding
)

var kindNames = map[Kind]string{
	KindArgument:         "argument",
	KindBusiness:         "business",
	KindAuthentication:   "authentication",
	KindNotAuthenticated: "not-authenticated",
	KindIllegalState:     "illegal-state",
	KindAccessDenied:     "access-denied",
	KindFieldValidation:  "field-validation",
	KindBinding:          "binding",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unclassified"
}
