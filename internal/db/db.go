// Package db opens the gorm database of the configured engine.
package db

import (
	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/config"
	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/db/dsn"
	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/db/models"
)

// Dialector returns the gorm dialector of the configured engine.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		return gormmysql.Open(dsn.Create(cfg)), nil
	case config.EnginePostgres:
		return postgres.Open(dsn.Create(cfg)), nil
	case config.EngineSQLite, "":
		return sqlite.Open(dsn.Create(cfg)), nil
	default:
		return nil, errors.Wrap(config.ErrUnknownGormEngine, cfg.DB.GormEngine)
	}
}

// Open connects to the database and migrates the models.
func Open(cfg *config.Config, gormCfg *gorm.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	if gormCfg == nil {
		gormCfg = &gorm.Config{}
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	if cfg.DB.GormEngine == config.EngineSQLite || cfg.DB.GormEngine == "" {
		// sqlite allows a single writer
		sqlDB, errDB := db.DB()
		if errDB != nil {
			return nil, errors.Wrap(errDB, "failed to get sql db")
		}

		sqlDB.SetMaxOpenConns(1)
	}

	if err = db.AutoMigrate(&models.User{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate database")
	}

	return db, nil
}
