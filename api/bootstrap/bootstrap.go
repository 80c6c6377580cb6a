package bootstrap

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/tbeaudouin05/recurly-trellai/api/config"
	"github.com/tbeaudouin05/recurly-trellai/api/metrics"
	"github.com/tbeaudouin05/recurly-trellai/api/services/recurly/app"
	recurlygw "github.com/tbeaudouin05/recurly-trellai/api/services/recurly/gateway/recurly"
)

var (
	recurlyClient *app.Client
	logger        = zap.NewNop()
	registry      = prometheus.NewRegistry()
	initOnce      sync.Once
	initErr       error
)

// Init loads config, builds the logger and metrics, and wires the Recurly client.
func Init() error {
	// If a client has already been injected (e.g., tests), do not override it.
	if recurlyClient != nil {
		return nil
	}
	var err error
	if config.AppConfig == nil {
		config.AppConfig, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	cfg := config.AppConfig

	logger, err = NewLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	g := recurlygw.New(recurlygw.Options{
		APIKey:         cfg.RecurlyAPIKey,
		BaseURL:        cfg.RecurlyBaseURL,
		AcceptLanguage: cfg.RecurlyAcceptLanguage,
		Timeout:        cfg.Timeout(),
		Logger:         logger,
		Metrics:        metrics.New(registry),
	})
	recurlyClient = app.NewClient(g, logger)
	logger.Info("recurly client ready",
		zap.String("base_url", cfg.RecurlyBaseURL),
		zap.String("app_env", cfg.AppEnv),
		zap.Bool("api_key_configured", cfg.RecurlyAPIKey != ""),
	)
	return nil
}

// NewLogger builds a production logger when APP_ENV is production and a
// development one otherwise, at LOG_LEVEL.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zc = zap.NewProductionConfig()
	}
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zc.Level = level
	return zc.Build()
}

func GetClient() *app.Client { return recurlyClient }

// SetClient allows tests to inject a client built over a stub gateway.
func SetClient(c *app.Client) { recurlyClient = c }

func Logger() *zap.Logger { return logger }

// Registry is the registry the gateway metrics are recorded on.
func Registry() *prometheus.Registry { return registry }

// Ensure runs Init() once per process and returns any initialization error.
func Ensure() error {
	initOnce.Do(func() {
		initErr = Init()
	})
	return initErr
}
