// Package handler holds what the JSON handlers of the web service share.
package handler

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/config"
	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/db/models"
	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/login"
	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/session"
)

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, api AuthAPI) error
}

// AuthAPI is what the handlers need from the authentication service.
type AuthAPI interface {
	login.Authenticator

	Refresh(ctx context.Context, refreshToken string) (login.Result, error)
	Logout(ctx context.Context, accessToken string) error
	CurrentUser(ctx context.Context, accessToken string) (session.Identity, error)
	RequireAdmin(id session.Identity) error
	ListUsers(ctx context.Context, limit, offset int) ([]models.User, int64, error)
}
