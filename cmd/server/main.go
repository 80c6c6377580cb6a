package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	bootstrap "github.com/tbeaudouin05/recurly-trellai/api/bootstrap"
	config "github.com/tbeaudouin05/recurly-trellai/api/config"
	"github.com/tbeaudouin05/recurly-trellai/api/router"
)

func main() {
	if err := bootstrap.Ensure(); err != nil {
		zap.Must(zap.NewDevelopment()).Fatal("bootstrap failed", zap.Error(err))
	}
	log := bootstrap.Logger().Named("server")
	defer func() { _ = log.Sync() }()

	srv := &http.Server{
		Addr:              ":" + config.AppConfig.HTTPPort,
		Handler:           otelhttp.NewHandler(router.NewRouter(), "recurly-proxy"),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		// Outbound calls are bounded by RECURLY_HTTP_TIMEOUT; leave room for it.
		WriteTimeout: config.AppConfig.Timeout() + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("running HTTP server", zap.String("addr", srv.Addr), zap.String("env", config.AppConfig.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
	log.Info("server closed")
}
