package config

import (
	"time"

	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/logger"
)

const (
	defaultBodyLimit  = 16 * 1024
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Token     Token
	Seed      Seed
}

// Webserver implement webserver settings.
type Webserver struct {
	DisableRecover bool   // disable recover middleware
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown in seconds
	URL            string // base url for the webserver
	BodyLimit      int    // max request body size in bytes
}

// Token holds the lifetimes of issued tokens.
type Token struct {
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Seed holds the account created on an empty user table.
type Seed struct {
	AdminUsername string
	AdminPassword string
}
