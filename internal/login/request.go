package login

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/failure"
)

const (
	// MsgUsernameRequired is returned when the username is missing.
	MsgUsernameRequired = "Username is required"
	// MsgPasswordRequired is returned when the password is missing.
	MsgPasswordRequired = "Password is required"
)

// Request is the login body as received on the wire.
type Request struct {
	Username *string `json:"username" validate:"omitnil,max=100"`
	Password *string `json:"password" validate:"omitnil,max=128"`
}

// Credentials turns the request into validated credentials. Missing fields
// fail first with an Argument failure, then the declarative rules run, then
// the blank checks of NewCredentials.
func (r Request) Credentials(validate *validator.Validate) (Credentials, error) {
	if r.Username == nil || *r.Username == "" {
		return Credentials{}, failure.Argument(MsgUsernameRequired)
	}

	if r.Password == nil || *r.Password == "" {
		return Credentials{}, failure.Argument(MsgPasswordRequired)
	}

	if validate != nil {
		if err := validate.Struct(r); err != nil {
			return Credentials{}, failure.FromValidation(err)
		}
	}

	return NewCredentials(*r.Username, *r.Password)
}

// NewValidator returns a validator that reports fields by their JSON name.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}
