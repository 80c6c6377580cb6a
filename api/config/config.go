package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// AppConfig holds the global application configuration
var AppConfig *Config

// Config holds the application configuration
type Config struct {
	// RecurlyAPIKey may be empty: every call can carry its own key.
	RecurlyAPIKey         string `yaml:"recurly_api_key"`
	RecurlyAcceptLanguage string `yaml:"recurly_accept_language"`
	RecurlyBaseURL        string `yaml:"recurly_base_url"`
	RecurlyHTTPTimeout    string `yaml:"recurly_http_timeout"`
	AppEnv                string `yaml:"app_env"`
	LogLevel              string `yaml:"log_level"`
	// Optional: base URL for running remote HTTP integration tests (e.g., https://api.example.com)
	IntegrationBaseURL string `yaml:"integration_base_url"`
	// Server port
	HTTPPort string `yaml:"port"`
}

// envVars maps Config fields to the environment. Env values win over the
// YAML file named by RECURLY_CONFIG_FILE.
var envVars = []struct {
	name    string
	envVar  string
	display string
}{
	{"RecurlyAPIKey", "RECURLY_API_KEY", "Recurly API Key"},
	{"RecurlyAcceptLanguage", "RECURLY_ACCEPT_LANGUAGE", "Recurly Accept-Language"},
	{"RecurlyBaseURL", "RECURLY_BASE_URL", "Recurly Base URL"},
	{"RecurlyHTTPTimeout", "RECURLY_HTTP_TIMEOUT", "Recurly HTTP Timeout"},
	{"AppEnv", "APP_ENV", "App Environment"},
	{"LogLevel", "LOG_LEVEL", "Log Level"},
	// Optional integration base URL for remote tests
	{"IntegrationBaseURL", "INTEGRATION_BASE_URL", "Integration Base URL"},
	{"HTTPPort", "PORT", "HTTP Port"},
}

// LoadConfig loads configuration from .env, the optional YAML file and
// environment variables, then applies defaults and validates the result.
func LoadConfig() (*Config, error) {
	config := &Config{}

	// Try to load .env file from current directory and parent directories
	currentDir, _ := os.Getwd()
	for currentDir != "/" {
		envPath := filepath.Join(currentDir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			if err = godotenv.Load(envPath); err != nil {
				return nil, fmt.Errorf("failed to load .env file: %v", err)
			}
			break
		}
		currentDir = filepath.Dir(currentDir)
	}

	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := loadFile(config, path); err != nil {
			return nil, err
		}
	}

	for _, v := range envVars {
		value := os.Getenv(v.envVar)
		if value == "" {
			continue
		}
		reflect.ValueOf(config).Elem().FieldByName(v.name).SetString(value)
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func loadFile(config *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %v", path, err)
	}
	if err := yaml.Unmarshal(raw, config); err != nil {
		return fmt.Errorf("failed to parse config file %s: %v", path, err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.RecurlyAcceptLanguage == "" {
		c.RecurlyAcceptLanguage = DefaultAcceptLanguage
	}
	if c.RecurlyBaseURL == "" {
		c.RecurlyBaseURL = DefaultBaseURL
	}
	if c.RecurlyHTTPTimeout == "" {
		c.RecurlyHTTPTimeout = DefaultHTTPTimeout
	}
	if c.AppEnv == "" {
		c.AppEnv = DefaultAppEnv
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.HTTPPort == "" {
		c.HTTPPort = DefaultHTTPPort
	}
}

// Validate rejects values the client could not run with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.RecurlyBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid %s: %q", display("RecurlyBaseURL"), c.RecurlyBaseURL)
	}
	if d, err := time.ParseDuration(c.RecurlyHTTPTimeout); err != nil || d <= 0 {
		return fmt.Errorf("invalid %s: %q", display("RecurlyHTTPTimeout"), c.RecurlyHTTPTimeout)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid %s: %q", display("LogLevel"), c.LogLevel)
	}
	return nil
}

// Timeout is RecurlyHTTPTimeout parsed; it falls back to the default when unset.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.RecurlyHTTPTimeout)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(DefaultHTTPTimeout)
	}
	return d
}

// IsProduction reports whether APP_ENV names the production environment.
func (c *Config) IsProduction() bool { return c.AppEnv == ProductionEnv }

func display(field string) string {
	for _, v := range envVars {
		if v.name == field {
			return v.display
		}
	}
	return field
}
