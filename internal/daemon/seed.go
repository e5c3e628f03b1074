package daemon

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/config"
	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/db/models"
)

// seed creates the configured admin account if the user table is empty.
func seed(cfg *config.Config, db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to count users")
	}

	if count > 0 || cfg.Seed.AdminUsername == "" {
		return nil
	}

	hashedPassword, err := models.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return err
	}

	if err = db.Create(&models.User{
		Username: cfg.Seed.AdminUsername,
		Password: hashedPassword,
		Active:   true,
		Admin:    true,
	}).Error; err != nil {
		return errors.Wrap(err, "failed to seed admin user")
	}

	log.Warn().Str("username", cfg.Seed.AdminUsername).Msg("seeded admin user, change its password")

	return nil
}
