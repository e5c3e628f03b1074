package auth

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/db/models"
)

// LocalProvider handles local database authentication.
type LocalProvider struct {
	db  *gorm.DB
	now func() time.Time
}

// NewLocalProvider creates a new local authentication provider.
func NewLocalProvider(db *gorm.DB) *LocalProvider {
	return &LocalProvider{
		db:  db,
		now: time.Now,
	}
}

// Authenticate authenticates a user against the local database.
func (p *LocalProvider) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := p.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	// Check if user is active
	if !user.Active {
		return nil, ErrUserAccountDisabled
	}

	if !user.VerifyPassword(password) {
		return nil, ErrInvalidPassword
	}

	return user, nil
}

// TouchLastLogin records a successful login.
func (p *LocalProvider) TouchLastLogin(ctx context.Context, userID uint64) error {
	err := p.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("last_login_at", p.now()).Error

	return errors.Wrap(err, "failed to update last login")
}

// CreateUser creates a new local user.
func (p *LocalProvider) CreateUser(ctx context.Context, username, password string, admin bool) (*models.User, error) {
	_, err := p.GetUserByUsername(ctx, username)
	if err == nil {
		return nil, ErrUserNameExists
	}

	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hashedPassword, err := models.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Active:   true,
		Admin:    admin,
		Username: username,
		Password: hashedPassword,
	}

	if err = p.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	return &user, nil
}

// SetActive activates or deactivates a user account.
func (p *LocalProvider) SetActive(ctx context.Context, userID uint64, active bool) error {
	err := p.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("active", active).Error

	return errors.Wrap(err, "failed to update user")
}

// GetUserByID retrieves a user by ID.
func (p *LocalProvider) GetUserByID(ctx context.Context, userID uint64) (*models.User, error) {
	var user models.User

	err := p.db.WithContext(ctx).First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}

	if err != nil {
		return nil, errors.Wrap(err, "failed to query user")
	}

	return &user, nil
}

// GetUserByUsername retrieves a user by username.
func (p *LocalProvider) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User

	err := p.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}

	if err != nil {
		return nil, errors.Wrap(err, "failed to query user")
	}

	return &user, nil
}

// ListUsers lists users ordered by id.
func (p *LocalProvider) ListUsers(ctx context.Context, limit, offset int) ([]models.User, int64, error) {
	var users []models.User

	var total int64

	if err := p.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count users")
	}

	err := p.db.WithContext(ctx).Order("id").Limit(limit).Offset(offset).Find(&users).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list users")
	}

	return users, total, nil
}
