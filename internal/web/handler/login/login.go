package login

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/config"
	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/failure"
	authn "github.com/GoPowerDNS-Admin/GoAuth-API/internal/login"
	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/web/handler"
)

const (
	// Path is the path of the login endpoint.
	Path = handler.AuthPath + "/login"

	// RefreshPath is the path of the token refresh endpoint.
	RefreshPath = handler.AuthPath + "/refresh"
)

// RefreshRequest is the body of a token refresh.
type RefreshRequest struct {
	RefreshToken *string `json:"refreshToken" validate:"omitnil,max=128"`
}

// Service is the login handler service.
type Service struct {
	handler.Service
	cfg      *config.Config
	api      handler.AuthAPI
	validate *validator.Validate
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, api handler.AuthAPI) error {
	if app == nil || cfg == nil || api == nil {
		return errors.New(handler.ErrNilACAFatalLogMsg)
	}

	s.cfg = cfg
	s.api = api
	s.validate = authn.NewValidator()

	// register routes
	app.Post(Path, s.Login)
	app.Post(RefreshPath, s.Refresh)

	return nil
}

// Login checks the submitted credentials and returns a token pair.
func (s *Service) Login(c fiber.Ctx) error {
	var req authn.Request

	if err := c.Bind().JSON(&req); err != nil {
		return failure.FromBinding(err)
	}

	creds, err := req.Credentials(s.validate)
	if err != nil {
		return err
	}

	result, err := s.api.Authenticate(c.Context(), creds)
	if err != nil {
		return err
	}

	return c.JSON(result)
}

// Refresh exchanges a refresh token for a new token pair.
func (s *Service) Refresh(c fiber.Ctx) error {
	var req RefreshRequest

	if err := c.Bind().JSON(&req); err != nil {
		return failure.FromBinding(err)
	}

	if req.RefreshToken == nil || *req.RefreshToken == "" {
		return failure.Argument(MsgRefreshTokenRequired)
	}

	if err := s.validate.Struct(req); err != nil {
		return err
	}

	result, err := s.api.Refresh(c.Context(), *req.RefreshToken)
	if err != nil {
		return err
	}

	return c.JSON(result)
}
