// Package failure implements the error taxonomy of the API and the classifier
// that turns any failure raised while handling a request into a stable JSON
// error envelope and an HTTP status code.
//
// Business and domain code raises tagged failures built with the constructors
// of this package (Argument, Business, Authentication, NotAuthenticated,
// IllegalState, AccessDenied, FieldValidation and Binding). A few foreign
// failure types are recognised as well: validator.ValidationErrors from
// go-playground/validator and the JSON decoding errors produced while binding
// a request body. Everything else is unclassified and answered with a generic
// 500 that never echoes the original text.
//
// The Classifier evaluates an ordered rule table, first match wins:
//
//	argument          400 INVALID_ARGUMENT
//	business          own status / own code
//	authentication    401 AUTHENTICATION_FAILED
//	not authenticated 401 AUTHENTICATION_REQUIRED
//	illegal state     400 ILLEGAL_STATE
//	access denied     403 ACCESS_DENIED
//	field validation  400 VALIDATION_ERROR
//	binding           400 BINDING_ERROR
//	unclassified      500 INTERNAL_ERROR
//
// Wrapped failures are found anywhere in the error chain, so the order of the
// table decides which variant wins when one chain carries several.
package failure
