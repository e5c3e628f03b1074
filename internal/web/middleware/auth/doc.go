// Package auth provides bearer token middleware for the JSON API.
//
// Bearer resolves the access token of the Authorization header and stores the
// identity in fiber.Locals. Requests without a usable token end with a
// failure.NotAuthenticated error. Admin must run after Bearer and rejects
// identities without admin privileges.
//
// Usage:
//
//	router.Get("/me", authmiddleware.Bearer(api), handler)
//	router.Get("/users", authmiddleware.Bearer(api), authmiddleware.Admin(api), handler)
package auth
