// Package account provides the handler that describes the calling user.
package account

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/config"
	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/failure"
	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/web/handler"
	authmiddleware "github.com/GoPowerDNS-Admin/GoAuth-API/internal/web/middleware/auth"
)

// Path is the path of the current user endpoint.
const Path = handler.AuthPath + "/me"

// Me is the JSON view of the calling user.
type Me struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Admin    bool   `json:"admin"`
}

// Service is the account handler service.
type Service struct {
	handler.Service
	cfg *config.Config
}

// Handler is the account handler.
var Handler = Service{}

// Init initializes the account handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, api handler.AuthAPI) error {
	if app == nil || cfg == nil || api == nil {
		return errors.New(handler.ErrNilACAFatalLogMsg)
	}

	s.cfg = cfg

	app.Get(Path, authmiddleware.Bearer(api), s.Get)

	return nil
}

// Get returns the identity behind the access token.
func (s *Service) Get(c fiber.Ctx) error {
	id, ok := authmiddleware.CurrentUser(c)
	if !ok {
		return failure.StateFromMessage("user is not authenticated")
	}

	return c.JSON(Me{
		ID:       id.UserID,
		Username: id.Username,
		Admin:    id.Admin,
	})
}
