package handler

const (
	// RootPath is the root path the route group.
	RootPath = "/"

	// APIPath is the prefix of every JSON endpoint.
	APIPath = RootPath + "api"

	// AuthPath is the route group of the authentication endpoints.
	AuthPath = APIPath + "/auth"

	// AdminPath is the route group of the administration endpoints.
	AdminPath = APIPath + "/admin"

	// ErrNilACAFatalLogMsg is used if app or cfg or api var pointer is nil.
	ErrNilACAFatalLogMsg = "app, cfg or api is nil"
)
