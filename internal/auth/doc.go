// Package auth authenticates users against the local database and manages
// their token sessions.
//
// LocalProvider looks users up with gorm and verifies Argon2id password
// hashes. Service implements login.Authenticator on top of it: rejected
// credentials become failure.Authentication, a missing or unknown access
// token becomes failure.NotAuthenticated and a non-admin caller of an admin
// operation gets failure.AccessDenied. Database and session store faults are
// returned as they are and end up as internal errors.
//
// Example usage:
//
//	provider := auth.NewLocalProvider(db)
//	service := auth.NewService(provider, session.New(memory.New(), 15*time.Minute, 168*time.Hour))
//
//	result, err := service.Authenticate(ctx, creds)
//	id, err := service.CurrentUser(ctx, result.AccessToken())
package auth
