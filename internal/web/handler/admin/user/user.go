// Package user provides the user listing of the admin area.
package user

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/config"
	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/db/models"
	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/web/handler"
	authmiddleware "github.com/GoPowerDNS-Admin/GoAuth-API/internal/web/middleware/auth"
)

const (
	// Path is the base path for user management.
	Path = handler.AdminPath + "/users"

	// DefaultPageSize for pagination.
	DefaultPageSize = 25

	// MaxPageSize caps the page size a client can ask for.
	MaxPageSize = 100
)

// View is the JSON view of a user. The password hash is never exposed.
type View struct {
	ID          uint64     `json:"id"`
	Username    string     `json:"username"`
	Active      bool       `json:"active"`
	Admin       bool       `json:"admin"`
	LastLoginAt *time.Time `json:"lastLoginAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Page is one page of the user listing.
type Page struct {
	Users      []View `json:"users"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	TotalItems int64  `json:"totalItems"`
	TotalPages int    `json:"totalPages"`
}

// Service provides the user listing.
type Service struct {
	handler.Service
	cfg *config.Config
	api handler.AuthAPI
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, api handler.AuthAPI) error {
	if app == nil || cfg == nil || api == nil {
		return errors.New(handler.ErrNilACAFatalLogMsg)
	}

	s.cfg = cfg
	s.api = api

	app.Get(Path,
		authmiddleware.Bearer(api),
		authmiddleware.Admin(api),
		s.List,
	)

	return nil
}

// List shows users with simple pagination.
func (s *Service) List(c fiber.Ctx) error {
	page := fiber.Query[int](c, "page", 1)
	if page < 1 {
		page = 1
	}

	pageSize := fiber.Query[int](c, "pageSize", DefaultPageSize)
	if pageSize < 1 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}

	users, total, err := s.api.ListUsers(c.Context(), pageSize, (page-1)*pageSize)
	if err != nil {
		return err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if totalPages == 0 {
		totalPages = 1
	}

	views := make([]View, 0, len(users))
	for i := range users {
		views = append(views, viewOf(&users[i]))
	}

	return c.JSON(Page{
		Users:      views,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	})
}

func viewOf(u *models.User) View {
	return View{
		ID:          u.ID,
		Username:    u.Username,
		Active:      u.Active,
		Admin:       u.Admin,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}
