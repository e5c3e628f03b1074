package auth

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/db/models"
	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/failure"
	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/login"
	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/session"
)

const (
	msgTokenRequired = "Access token is required"
	msgTokenUnknown  = "Access token is not valid"
	msgAdminRequired = "Admin privileges are required"
)

// Service authenticates users and manages their token sessions.
type Service struct {
	provider *LocalProvider
	sessions *session.Store
}

var _ login.Authenticator = (*Service)(nil)

// NewService creates a new auth service.
func NewService(provider *LocalProvider, sessions *session.Store) *Service {
	return &Service{
		provider: provider,
		sessions: sessions,
	}
}

// Provider returns the underlying local provider.
func (s *Service) Provider() *LocalProvider {
	return s.provider
}

// Authenticate checks the credentials and issues a new token pair.
func (s *Service) Authenticate(ctx context.Context, creds login.Credentials) (login.Result, error) {
	user, err := s.provider.Authenticate(ctx, creds.Username(), creds.Password())
	if err != nil {
		if isRejection(err) {
			return login.Result{}, failure.Authentication(err)
		}

		return login.Result{}, err
	}

	pair, err := s.sessions.Issue(identityOf(user))
	if err != nil {
		return login.Result{}, err
	}

	if err = s.provider.TouchLastLogin(ctx, user.ID); err != nil {
		log.Warn().Err(err).Object("credentials", creds).Msg("failed to record login")
	}

	return login.ResultOf(pair.Access, pair.Refresh), nil
}

// Refresh exchanges a refresh token for a new token pair. The account is
// checked again so disabled users cannot keep a session alive.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (login.Result, error) {
	data, err := s.sessions.Resolve(session.KindRefresh, refreshToken)
	if err != nil {
		return login.Result{}, tokenFailure(err, failure.Authentication)
	}

	user, err := s.provider.GetUserByID(ctx, data.UserID)
	if err == nil && !user.Active {
		err = ErrUserAccountDisabled
	}

	if err != nil {
		if isRejection(err) {
			if errRevoke := s.sessions.Revoke(data.Pair); errRevoke != nil {
				log.Warn().Err(errRevoke).Uint64("user_id", data.UserID).Msg("failed to revoke session")
			}

			return login.Result{}, failure.Authentication(err)
		}

		return login.Result{}, err
	}

	pair, err := s.sessions.Rotate(refreshToken)
	if err != nil {
		return login.Result{}, tokenFailure(err, failure.Authentication)
	}

	return login.ResultOf(pair.Access, pair.Refresh), nil
}

// Logout revokes the session of the access token.
func (s *Service) Logout(_ context.Context, accessToken string) error {
	return tokenFailure(s.sessions.Revoke(accessToken), notAuthenticated)
}

// CurrentUser resolves the identity behind an access token.
func (s *Service) CurrentUser(_ context.Context, accessToken string) (session.Identity, error) {
	data, err := s.sessions.Resolve(session.KindAccess, accessToken)
	if err != nil {
		return session.Identity{}, tokenFailure(err, notAuthenticated)
	}

	return data.Identity, nil
}

// RequireAdmin denies identities without admin privileges.
func (s *Service) RequireAdmin(id session.Identity) error {
	if !id.Admin {
		return failure.AccessDenied(msgAdminRequired)
	}

	return nil
}

// ListUsers returns a page of users and the total count.
func (s *Service) ListUsers(ctx context.Context, limit, offset int) ([]models.User, int64, error) {
	return s.provider.ListUsers(ctx, limit, offset)
}

func identityOf(user *models.User) session.Identity {
	return session.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Admin:    user.Admin,
	}
}

func isRejection(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrInvalidPassword) ||
		errors.Is(err, ErrUserAccountDisabled)
}

func notAuthenticated(err error) *failure.Error {
	if errors.Is(err, session.ErrEmptyToken) {
		return failure.NotAuthenticated(msgTokenRequired)
	}

	return failure.NotAuthenticated(msgTokenUnknown)
}

// tokenFailure classifies token lookup errors. Store faults pass through.
func tokenFailure(err error, wrap func(error) *failure.Error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, session.ErrTokenNotFound) || errors.Is(err, session.ErrEmptyToken) {
		return wrap(err)
	}

	return err
}
