package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfigPath(t *testing.T) string {
	t.Helper()

	// Get the project root by going up from internal/config
	projectRoot, err := filepath.Abs("../../")
	if err != nil {
		t.Fatalf("failed to get project root: %v", err)
	}

	return filepath.Join(projectRoot, "etc") + string(filepath.Separator)
}

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(testConfigPath(t))
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	// Test basic config fields
	if cfg.Title == "" {
		t.Error("Config.Title should not be empty")
	}

	if cfg.Webserver.Port == 0 {
		t.Error("Webserver.Port should not be 0")
	}

	if cfg.Webserver.URL == "" {
		t.Error("Webserver.URL should not be empty")
	}

	assert.Equal(t, 15*time.Minute, cfg.Token.AccessTTL)
	assert.Equal(t, 168*time.Hour, cfg.Token.RefreshTTL)
	assert.Equal(t, EngineSQLite, cfg.DB.GormEngine)
	assert.Equal(t, "goauth-api", cfg.Log.AppName)
	assert.Equal(t, "error.log", cfg.Log.File.ErrorLog)
	assert.Equal(t, 28, cfg.Log.File.WarnMaxAge)
	assert.True(t, cfg.Log.Console.Enabled)
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name: "valid config",
			config: Config{
				Webserver: Webserver{
					Port: 8080,
					URL:  "http://localhost:8080",
				},
			},
		},
		{
			name: "missing port",
			config: Config{
				Webserver: Webserver{
					Port: 0,
					URL:  "http://localhost:8080",
				},
			},
			wantErr: ErrWebServerPortCanNotBeZero,
		},
		{
			name: "missing URL",
			config: Config{
				Webserver: Webserver{
					Port: 8080,
					URL:  "",
				},
			},
			wantErr: ErrEmptyURL,
		},
		{
			name: "refresh shorter than access",
			config: Config{
				Webserver: Webserver{Port: 8080, URL: "http://localhost:8080"},
				Token:     Token{AccessTTL: time.Hour, RefreshTTL: time.Minute},
			},
			wantErr: ErrRefreshShorterThanAccess,
		},
		{
			name: "unknown engine",
			config: Config{
				Webserver: Webserver{Port: 8080, URL: "http://localhost:8080"},
				DB:        DB{GormEngine: "oracle"},
			},
			wantErr: ErrUnknownGormEngine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.config)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.True(t, errors.Is(err, tt.wantErr), "validate() error = %v, want %v", err, tt.wantErr)
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{Webserver: Webserver{Port: 8080, URL: "http://localhost:8080"}}

	require.NoError(t, validate(&cfg))

	assert.Equal(t, 5, cfg.Webserver.ShutDownTime)
	assert.Equal(t, defaultBodyLimit, cfg.Webserver.BodyLimit)
	assert.Equal(t, defaultAccessTTL, cfg.Token.AccessTTL)
	assert.Equal(t, defaultRefreshTTL, cfg.Token.RefreshTTL)
	assert.Equal(t, EngineSQLite, cfg.DB.GormEngine)
}

func TestReadConfigWithJSONOverride(t *testing.T) {
	// Set JSON override environment variable
	jsonOverride := `{"Title":"Test Override","Webserver":{"Port":9090}}`
	t.Setenv(EnvConfigJSON, jsonOverride)

	cfg, err := ReadConfig(testConfigPath(t))
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Title != "Test Override" {
		t.Errorf("Title = %v, want %v", cfg.Title, "Test Override")
	}

	if cfg.Webserver.Port != 9090 {
		t.Errorf("Webserver.Port = %v, want %v", cfg.Webserver.Port, 9090)
	}

	// untouched keys keep the file value
	assert.Equal(t, "http://localhost:8080", cfg.Webserver.URL)
}

func TestReadConfigWithEnvOverride(t *testing.T) {
	t.Setenv(EnvPrefix+"_WEBSERVER_PORT", "7070")

	cfg, err := ReadConfig(testConfigPath(t))
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Webserver.Port)
}

func TestReadConfigMissingFile(t *testing.T) {
	_, err := ReadConfig(t.TempDir())
	assert.Error(t, err)
}

func TestDumpConfigJSON(t *testing.T) {
	cfg := Config{
		Title:   "Test",
		DevMode: true,
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
		DB:   DB{Password: "db-secret"},
		Seed: Seed{AdminUsername: "admin", AdminPassword: "seed-secret"},
	}

	jsonStr, err := DumpConfigJSON(&cfg)
	if err != nil {
		t.Fatalf("DumpConfigJSON() error = %v", err)
	}

	// Check if output is valid JSON by checking for expected fields
	if !strings.Contains(jsonStr, "Test") {
		t.Error("DumpConfigJSON() output should contain Title")
	}

	assert.NotContains(t, jsonStr, "db-secret")
	assert.NotContains(t, jsonStr, "seed-secret")
	assert.Equal(t, "db-secret", cfg.DB.Password, "dump must not modify the config")
}
