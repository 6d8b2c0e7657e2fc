package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleConfigPath(t *testing.T) string {
	t.Helper()

	projectRoot, err := filepath.Abs("../../")
	require.NoError(t, err, "failed to get project root")

	return filepath.Join(projectRoot, "etc") + string(filepath.Separator)
}

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(exampleConfigPath(t))
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Title)
	assert.NotZero(t, cfg.Webserver.Port)
	assert.NotEmpty(t, cfg.Webserver.URL)
	assert.Equal(t, EngineSQLite, cfg.DB.Engine)
	assert.NotEmpty(t, cfg.Log.AppName)
	assert.NotEmpty(t, cfg.Log.ServiceName)
}

func TestReadConfigMissingFile(t *testing.T) {
	_, err := ReadConfig(t.TempDir() + string(filepath.Separator))
	assert.Error(t, err)
}

func TestReadConfigEnvOverride(t *testing.T) {
	t.Setenv(EnvConfigJSON, `{"Title":"Overridden","Webserver":{"Port":9999,"URL":"http://example.com"}}`)

	cfg, err := ReadConfig(exampleConfigPath(t))
	require.NoError(t, err)

	assert.Equal(t, "Overridden", cfg.Title)
	assert.Equal(t, 9999, cfg.Webserver.Port)
	assert.Equal(t, "http://example.com", cfg.Webserver.URL)
}

func TestReadConfigEnvOverrideInvalidJSON(t *testing.T) {
	t.Setenv(EnvConfigJSON, `{not json`)

	_, err := ReadConfig(exampleConfigPath(t))
	assert.Error(t, err)
}

func TestValidateDefaults(t *testing.T) {
	c := Config{
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
	}

	require.NoError(t, validate(&c))

	assert.Equal(t, EngineSQLite, c.DB.Engine, "engine defaults to sqlite")
	assert.Equal(t, defaultShutDownTime, c.Webserver.ShutDownTime)
	assert.Equal(t, 24*time.Hour, c.Webserver.Session.ExpiryTime)
	assert.Equal(t, 5*time.Minute, c.Webserver.CacheTTL)
	assert.Equal(t, 10*time.Second, c.Mail.Timeout)
}

func TestValidateErrors(t *testing.T) {
	testCases := []struct {
		name      string
		mutate    func(*Config)
		wantedErr error
	}{
		{
			name:      "zero port",
			mutate:    func(c *Config) { c.Webserver.Port = 0 },
			wantedErr: ErrWebServerPortCanNotBeZero,
		},
		{
			name:      "empty url",
			mutate:    func(c *Config) { c.Webserver.URL = "" },
			wantedErr: ErrEmptyURL,
		},
		{
			name:      "unknown db engine",
			mutate:    func(c *Config) { c.DB.Engine = "oracle" },
			wantedErr: ErrUnknownDBEngine,
		},
		{
			name:      "mail enabled without url",
			mutate:    func(c *Config) { c.Mail.Enabled = true },
			wantedErr: ErrMailURLEmpty,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := Config{
				Webserver: Webserver{
					Port: 8080,
					URL:  "http://localhost:8080",
				},
			}
			tc.mutate(&c)

			assert.ErrorIs(t, validate(&c), tc.wantedErr)
		})
	}
}

func TestDumpConfig(t *testing.T) {
	cfg, err := ReadConfig(exampleConfigPath(t))
	require.NoError(t, err)

	out, err := DumpConfig(cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
}
