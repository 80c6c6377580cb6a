package config

import "go.uber.org/zap"

const (
	// ProductionEnv is the APP_ENV value live tests must never run against.
	ProductionEnv = "production"

	// ConfigFileEnv names the optional YAML config file.
	ConfigFileEnv = "RECURLY_CONFIG_FILE"

	DefaultBaseURL        = "https://v3.recurly.com"
	DefaultAcceptLanguage = "en-US"
	DefaultHTTPTimeout    = "30s"
	DefaultAppEnv         = "development"
	DefaultLogLevel       = "info"
	DefaultHTTPPort       = "8080"
)

// CanTest reports whether live tests may run: the config loads and APP_ENV is
// not production.
func CanTest() bool {
	cfg, err := LoadConfig()
	if err != nil {
		return false
	}
	return !cfg.IsProduction()
}

// CheckNotProduction aborts immediately if APP_ENV is production.
// This should be called at the start of any test that talks to Recurly.
func CheckNotProduction() {
	logger := zap.Must(zap.NewDevelopment())
	defer func() { _ = logger.Sync() }()

	cfg, err := LoadConfig()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	if cfg.IsProduction() {
		logger.Fatal("tests aborted: APP_ENV is production", zap.String("app_env", cfg.AppEnv))
	}
}
