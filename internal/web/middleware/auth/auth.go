package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/failure"
	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/session"
)

const (
	// LocalCurrentUser is the fiber.Locals key of the resolved identity.
	LocalCurrentUser = "CurrentUser"

	// LocalAccessToken is the fiber.Locals key of the bearer token.
	LocalAccessToken = "AccessToken"

	bearerPrefix = "bearer "

	msgBearerRequired = "Bearer token is required"
)

// Resolver resolves access tokens to identities.
type Resolver interface {
	CurrentUser(ctx context.Context, accessToken string) (session.Identity, error)
}

// Guard decides whether an identity may use admin endpoints.
type Guard interface {
	RequireAdmin(id session.Identity) error
}

// Bearer is a fiber middleware that authenticates the request by its bearer token.
func Bearer(resolver Resolver) fiber.Handler {
	return func(c fiber.Ctx) error {
		token := BearerToken(c)
		if token == "" {
			return failure.NotAuthenticated(msgBearerRequired)
		}

		id, err := resolver.CurrentUser(c.Context(), token)
		if err != nil {
			return err
		}

		c.Locals(LocalCurrentUser, id)
		c.Locals(LocalAccessToken, token)

		return c.Next()
	}
}

// Admin is a fiber middleware that only lets admins pass. Without an identity
// in the locals the request is not authenticated.
func Admin(guard Guard) fiber.Handler {
	return func(c fiber.Ctx) error {
		id, ok := CurrentUser(c)
		if !ok {
			return failure.NotAuthenticated(msgBearerRequired)
		}

		if err := guard.RequireAdmin(id); err != nil {
			return err
		}

		return c.Next()
	}
}

// BearerToken returns the token of an "Authorization: Bearer" header or "".
func BearerToken(c fiber.Ctx) string {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}

	return strings.TrimSpace(header[len(bearerPrefix):])
}

// CurrentUser returns the identity stored by Bearer.
func CurrentUser(c fiber.Ctx) (session.Identity, bool) {
	id, ok := c.Locals(LocalCurrentUser).(session.Identity)

	return id, ok
}

// AccessToken returns the token stored by Bearer.
func AccessToken(c fiber.Ctx) string {
	token, _ := c.Locals(LocalAccessToken).(string)

	return token
}
