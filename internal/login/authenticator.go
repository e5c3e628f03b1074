package login

import "context"

// Authenticator checks credentials and issues the tokens of a session.
// Rejected credentials are reported as failure.Authentication.
type Authenticator interface {
	Authenticate(ctx context.Context, creds Credentials) (Result, error)
}
