// Package logout provides the handler that ends a token session.
package logout

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/config"
	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/web/handler"
	authmiddleware "github.com/GoPowerDNS-Admin/GoAuth-API/internal/web/middleware/auth"
)

// Path is the path of the logout endpoint.
const Path = handler.AuthPath + "/logout"

// Service is the logout handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	api handler.AuthAPI
}

// Handler is the logout handler.
var Handler = Service{}

// Init initializes the logout handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, api handler.AuthAPI) error {
	if app == nil || cfg == nil || api == nil {
		return errors.New(handler.ErrNilACAFatalLogMsg)
	}

	s.cfg = cfg
	s.api = api

	app.Post(Path, authmiddleware.Bearer(api), s.Logout)

	return nil
}

// Logout revokes the access token of the request and its refresh token.
func (s *Service) Logout(c fiber.Ctx) error {
	if err := s.api.Logout(c.Context(), authmiddleware.AccessToken(c)); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
