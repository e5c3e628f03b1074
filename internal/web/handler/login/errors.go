// Package login provides the JSON handlers of the login and token refresh flow.
//
// This file defines the messages of the argument failures raised by the handlers.
package login

const (
	// MsgRefreshTokenRequired is returned when a refresh request has no token.
	MsgRefreshTokenRequired = "Refresh token is required"
)
