package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devjourney/devjourney-backend/config"
	"github.com/devjourney/devjourney-backend/internal/bootstrap"
	"github.com/devjourney/devjourney-backend/internal/jobs"
	"github.com/devjourney/devjourney-backend/internal/journal/service"
	"github.com/devjourney/devjourney-backend/internal/logging"
	"github.com/devjourney/devjourney-backend/internal/metrics"
)

const serviceName = "devjourney-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Logger().WithError(err).Fatal("failed to load config")
	}

	logging.Init(cfg.App.Environment, cfg.App.LogLevel)
	log := logging.Logger().WithField("service", serviceName)
	ginMode := bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to open store")
	}
	defer store.Close()

	authMW, err := bootstrap.AuthMiddleware(ctx, &cfg.Auth)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize auth")
	}

	m := metrics.New()
	journal := service.NewJournalService(store.Repo, service.Options{
		Recorder:      m,
		PublicBaseURL: cfg.Server.PublicBaseURL,
	})

	reporter := jobs.NewStatsReporter(journal, m)
	if err := reporter.Start(cfg.App.StatsRefreshCron); err != nil {
		log.WithError(err).Fatal("failed to start stats reporter")
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		Backend:     store.Backend,
		Server:      cfg.Server,
		RateLimit:   cfg.RateLimit,
		Journal:     journal,
		Metrics:     m,
		Auth:        authMW,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Server.Port).
			WithField("store", store.Backend).
			WithField("auth", cfg.Auth.Mode).
			WithField("gin_mode", ginMode).
			Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("http shutdown")
	}
	if err := reporter.Stop(shutdownCtx); err != nil {
		log.WithError(err).Warn("stats reporter did not stop in time")
	}
}
