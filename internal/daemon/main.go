// Package daemon wires the database, the session store and the web service together.
package daemon

import (
	"fmt"

	"github.com/gofiber/storage/memory/v2"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/auth"
	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/config"
	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/db"
	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/db/dsn"
	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/session"
	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/web"
)

// SessionTable is the table of the sql session backends.
const SessionTable = "sessions"

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	sessions   *session.Store
	webService *web.Service
}

// Start starts the Daemon's web service and blocks until it is shut down.
func (d *Daemon) Start() error {
	errCh := make(chan error, 1)

	go func() {
		errCh <- d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
	}()

	go d.webService.WaitShutdown()

	err := <-errCh

	d.close()

	return err
}

func (d *Daemon) close() {
	if err := d.sessions.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close session store")
	}

	if sqlDB, err := d.db.DB(); err == nil {
		if err = sqlDB.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	gdb, err := db.Open(cfg, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err = seed(cfg, gdb); err != nil {
		return nil, err
	}

	backend, err := sessionBackend(cfg)
	if err != nil {
		return nil, err
	}

	sessions := session.New(backend, cfg.Token.AccessTTL, cfg.Token.RefreshTTL)
	authService := auth.NewService(auth.NewLocalProvider(gdb), sessions)

	return &Daemon{
		cfg:        cfg,
		db:         gdb,
		sessions:   sessions,
		webService: web.New(cfg, authService),
	}, nil
}

// sessionBackend keeps tokens next to the users for the sql engines. sqlite
// still uses the in-memory storage, tokens are lost on restart.
func sessionBackend(cfg *config.Config) (session.Backend, error) {
	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.Create(cfg),
			Table:         SessionTable,
		}), nil
	case config.EnginePostgres:
		return sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: dsn.Create(cfg),
			Table:         SessionTable,
		}), nil
	case config.EngineSQLite, "":
		return memory.New(), nil
	default:
		return nil, errors.Wrap(config.ErrUnknownGormEngine, cfg.DB.GormEngine)
	}
}
