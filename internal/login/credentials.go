package login

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/failure"
)

const (
	// MsgUsernameBlank is returned for a username made of whitespace only.
	MsgUsernameBlank = "Username cannot be blank"
	// MsgPasswordBlank is returned for a password made of whitespace only.
	MsgPasswordBlank = "Password cannot be blank"
)

// Credentials is a validated login payload. It can only be built with
// NewCredentials and is immutable afterwards.
type Credentials struct {
	username string
	password string
}

// NewCredentials validates username and password. A value that is empty after
// trimming fails with an Argument failure. The stored values are not trimmed.
func NewCredentials(username, password string) (Credentials, error) {
	if strings.TrimSpace(username) == "" {
		return Credentials{}, failure.Argument(MsgUsernameBlank)
	}

	if strings.TrimSpace(password) == "" {
		return Credentials{}, failure.Argument(MsgPasswordBlank)
	}

	return Credentials{username: username, password: password}, nil
}

// Username returns the username as submitted.
func (c Credentials) Username() string {
	return c.username
}

// Password returns the password as submitted.
func (c Credentials) Password() string {
	return c.password
}

// String hides the password.
func (c Credentials) String() string {
	return "Credentials{username: " + c.username + "}"
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler, the password is never logged.
func (c Credentials) MarshalZerologObject(e *zerolog.Event) {
	e.Str("username", c.username)
}
