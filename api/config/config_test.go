package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateEnv blanks every variable LoadConfig reads so the host environment
// cannot leak into a test.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, v := range envVars {
		t.Setenv(v.envVar, "")
	}
	t.Setenv(ConfigFileEnv, "")
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.RecurlyBaseURL)
	assert.Equal(t, DefaultAcceptLanguage, cfg.RecurlyAcceptLanguage)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Equal(t, DefaultAppEnv, cfg.AppEnv)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultHTTPPort, cfg.HTTPPort)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_APIKeyIsOptional(t *testing.T) {
	isolateEnv(t)
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.RecurlyAPIKey)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	isolateEnv(t)
	t.Setenv("RECURLY_API_KEY", "env-key")
	t.Setenv("RECURLY_BASE_URL", "http://localhost:9999")
	t.Setenv("RECURLY_HTTP_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PORT", "9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.RecurlyAPIKey)
	assert.Equal(t, "http://localhost:9999", cfg.RecurlyBaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "9090", cfg.HTTPPort)
}

func TestLoadConfig_YAMLFileEnvWins(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "recurly.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
recurly_api_key: file-key
recurly_accept_language: fr-FR
recurly_http_timeout: 10s
app_env: staging
`), 0o600))
	t.Setenv(ConfigFileEnv, path)
	t.Setenv("RECURLY_API_KEY", "env-key")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.RecurlyAPIKey)
	assert.Equal(t, "fr-FR", cfg.RecurlyAcceptLanguage)
	assert.Equal(t, 10*time.Second, cfg.Timeout())
	assert.Equal(t, "staging", cfg.AppEnv)
}

func TestLoadConfig_BadFile(t *testing.T) {
	isolateEnv(t)
	t.Setenv(ConfigFileEnv, filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := LoadConfig()
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("recurly_api_key: [unterminated"), 0o600))
	t.Setenv(ConfigFileEnv, path)
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{RecurlyBaseURL: DefaultBaseURL, RecurlyHTTPTimeout: "30s", LogLevel: "info"}
	require.NoError(t, valid.Validate())

	cases := map[string]func(c *Config){
		"relative base url": func(c *Config) { c.RecurlyBaseURL = "v3.recurly.com" },
		"ftp base url":      func(c *Config) { c.RecurlyBaseURL = "ftp://v3.recurly.com" },
		"bad timeout":       func(c *Config) { c.RecurlyHTTPTimeout = "soon" },
		"negative timeout":  func(c *Config) { c.RecurlyHTTPTimeout = "-1s" },
		"bad log level":     func(c *Config) { c.LogLevel = "chatty" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := valid
			mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestCanTest(t *testing.T) {
	isolateEnv(t)
	assert.True(t, CanTest())

	t.Setenv("APP_ENV", ProductionEnv)
	assert.False(t, CanTest())

	t.Setenv("APP_ENV", "")
	t.Setenv("LOG_LEVEL", "chatty")
	assert.False(t, CanTest())
}
