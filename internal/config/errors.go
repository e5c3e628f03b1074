package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrRefreshShorterThanAccess error if the refresh token would expire before the access token.
	ErrRefreshShorterThanAccess = errors.New("toml config token.refreshTTL can not be shorter than token.accessTTL")

	// ErrUnknownGormEngine error if config db.gormEngine names an unsupported engine.
	ErrUnknownGormEngine = errors.New("toml config db.gormEngine is not supported")
)
