// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// EnvConfigJSON holds a JSON document merged over the main config file.
	EnvConfigJSON = "GOAUTH_API_CONFIG_JSON"

	// EnvPrefix is the prefix of single value env overrides, e.g. GOAUTH_API_WEBSERVER_PORT.
	EnvPrefix = "GOAUTH_API"

	// mainConfigFile is the name of the main config file inside the config dir.
	mainConfigFile = "main.toml"

	// masked replaces secrets in config dumps.
	masked = "********"
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c   Config
		err error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	v := viper.New()
	v.SetConfigFile(filepath.Join(path, mainConfigFile))

	if err = v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	if configAsJSON := os.Getenv(EnvConfigJSON); configAsJSON != "" {
		v.SetConfigType("json")

		if err = v.MergeConfig(strings.NewReader(configAsJSON)); err != nil {
			return Config{}, errors.Wrap(err, "failed to merge json config from env")
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err = v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode config")
	}

	return c, validate(&c)
}

// DumpConfigJSON config as JSON String, secrets are masked.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer

	out := *c
	if out.DB.Password != "" {
		out.DB.Password = masked
	}

	if out.Seed.AdminPassword != "" {
		out.Seed.AdminPassword = masked
	}

	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(out); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate minimal config settings and fill defaults.
func validate(c *Config) error {
	// validate webserver listening port
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = 5 // set default of 5 seconds
	}

	if c.Webserver.BodyLimit == 0 {
		c.Webserver.BodyLimit = defaultBodyLimit
	}

	if c.Token.AccessTTL == 0 {
		c.Token.AccessTTL = defaultAccessTTL
	}

	if c.Token.RefreshTTL == 0 {
		c.Token.RefreshTTL = defaultRefreshTTL
	}

	if c.Token.RefreshTTL < c.Token.AccessTTL {
		return errors.Wrap(ErrRefreshShorterThanAccess, invalidErrMessage)
	}

	if c.DB.GormEngine == "" {
		c.DB.GormEngine = EngineSQLite
	}

	switch c.DB.GormEngine {
	case EngineSQLite, EngineMySQL, EnginePostgres:
	default:
		return errors.Wrapf(ErrUnknownGormEngine, "%s: %q", invalidErrMessage, c.DB.GormEngine)
	}

	return nil
}
