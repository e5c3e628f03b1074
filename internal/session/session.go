// Package session keeps issued access and refresh tokens in a gofiber storage backend.
package session

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/uniuri"
)

// Kind tells access tokens and refresh tokens apart.
type Kind string

const (
	// KindAccess is a short lived token sent with every request.
	KindAccess Kind = "access"
	// KindRefresh is a long lived token exchanged for a new pair.
	KindRefresh Kind = "refresh"
)

var (
	// ErrTokenNotFound is returned for unknown, expired or revoked tokens.
	ErrTokenNotFound = errors.New("token not found")

	// ErrEmptyToken is returned when no token was given.
	ErrEmptyToken = errors.New("token is empty")
)

// Backend is the subset of a gofiber storage the store needs.
type Backend interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte, exp time.Duration) error
	Delete(key string) error
	Close() error
}

// Identity is the account a token pair is issued for.
type Identity struct {
	UserID   uint64
	Username string
	Admin    bool
}

// Data is stored per token.
type Data struct {
	Identity
	Kind     Kind
	Pair     string // the other token of the pair
	IssuedAt time.Time
}

// Pair is a freshly issued access and refresh token.
type Pair struct {
	Access  string
	Refresh string
}

// Store issues, resolves and revokes tokens.
type Store struct {
	backend    Backend
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// New creates a new store on the given backend.
func New(backend Backend, accessTTL, refreshTTL time.Duration) *Store {
	if backend == nil {
		panic("storage is nil")
	}

	return &Store{
		backend:    backend,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// Issue creates a new token pair for the identity.
func (s *Store) Issue(id Identity) (Pair, error) {
	pair := Pair{
		Access:  uniuri.NewLen(uniuri.TokenLen),
		Refresh: uniuri.NewLen(uniuri.TokenLen),
	}

	issuedAt := s.now()

	if err := s.write(KindAccess, pair.Access, Data{
		Identity: id, Kind: KindAccess, Pair: pair.Refresh, IssuedAt: issuedAt,
	}, s.accessTTL); err != nil {
		return Pair{}, err
	}

	if err := s.write(KindRefresh, pair.Refresh, Data{
		Identity: id, Kind: KindRefresh, Pair: pair.Access, IssuedAt: issuedAt,
	}, s.refreshTTL); err != nil {
		_ = s.backend.Delete(key(KindAccess, pair.Access))

		return Pair{}, err
	}

	return pair, nil
}

// Resolve returns the data stored for a token of the given kind.
func (s *Store) Resolve(kind Kind, token string) (Data, error) {
	if token == "" {
		return Data{}, ErrEmptyToken
	}

	raw, err := s.backend.Get(key(kind, token))
	if err != nil {
		return Data{}, errors.Wrap(err, "failed to read token")
	}

	if len(raw) == 0 {
		return Data{}, ErrTokenNotFound
	}

	var data Data
	if err = json.Unmarshal(raw, &data); err != nil {
		return Data{}, errors.Wrap(err, "failed to decode token")
	}

	return data, nil
}

// Rotate exchanges a refresh token for a new pair. The old pair is revoked.
func (s *Store) Rotate(refresh string) (Pair, error) {
	data, err := s.Resolve(KindRefresh, refresh)
	if err != nil {
		return Pair{}, err
	}

	if err = s.deletePair(KindRefresh, refresh, data.Pair); err != nil {
		return Pair{}, err
	}

	return s.Issue(data.Identity)
}

// Revoke removes an access token and its refresh token.
func (s *Store) Revoke(access string) error {
	data, err := s.Resolve(KindAccess, access)
	if err != nil {
		return err
	}

	return s.deletePair(KindAccess, access, data.Pair)
}

// Close closes the backend.
func (s *Store) Close() error {
	return s.backend.Close() //nolint:wrapcheck
}

func (s *Store) write(kind Kind, token string, data Data, exp time.Duration) error {
	out, err := json.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "failed to encode token")
	}

	return errors.Wrap(s.backend.Set(key(kind, token), out, exp), "failed to write token")
}

func (s *Store) deletePair(kind Kind, token, pair string) error {
	other := KindAccess
	if kind == KindAccess {
		other = KindRefresh
	}

	if err := s.backend.Delete(key(kind, token)); err != nil {
		return errors.Wrap(err, "failed to delete token")
	}

	return errors.Wrap(s.backend.Delete(key(other, pair)), "failed to delete paired token")
}

func key(kind Kind, token string) string {
	return string(kind) + ":" + token
}
