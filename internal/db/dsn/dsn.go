// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"

	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/config"
)

// Create builds the Data Source Name of the configured gorm engine.
func Create(cfg *config.Config) string {
	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
			cfg.DB.User,
			cfg.DB.Password,
			cfg.DB.Host,
			cfg.DB.Port,
			cfg.DB.Name,
			cfg.DB.Extras,
		)
	case config.EnginePostgres:
		out := fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
			cfg.DB.User,
			cfg.DB.Password,
			cfg.DB.Host,
			cfg.DB.Port,
			cfg.DB.Name,
		)
		if cfg.DB.Extras != "" {
			out += "?" + cfg.DB.Extras
		}

		return out
	default:
		if cfg.DB.Name == "" {
			return "file::memory:?cache=shared"
		}

		return cfg.DB.Name
	}
}
