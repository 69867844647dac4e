package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	adapthttp "codingevents/internal/adapter/http"
	"codingevents/internal/adapter/memory"
	"codingevents/internal/adapter/postgres"
	"codingevents/internal/app"
	"codingevents/internal/config"
	"codingevents/internal/domain"
	"codingevents/internal/metrics"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.FromEnv()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	var (
		users    domain.UserRepository
		sessions domain.SessionRepository
		events   domain.EventRepository
	)
	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			logger.WithError(err).Fatal("db open")
		}
		defer func() { _ = db.Close() }()
		users, sessions, events = db, postgres.NewSessionRepo(db), db
	} else {
		logger.Warn("DATABASE_URL not set, using in-memory storage")
		mem := memory.New()
		users, sessions, events = mem, mem.NewSessionRepo(), mem
	}

	authSvc := app.NewAuthService(users, sessions)
	eventSvc := app.NewEventService(events)

	var sso *adapthttp.SSO
	if cfg.SSOEnabled() {
		var err error
		sso, err = adapthttp.NewSSO(context.Background(), cfg.OIDCIssuer, cfg.OIDCClientID, cfg.OIDCClientSecret, cfg.OIDCRedirectURL)
		if err != nil {
			logger.WithError(err).Fatal("oidc setup")
		}
	}

	server := adapthttp.New(authSvc, eventSvc, logger, metrics.New(), sso)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.WithField("addr", cfg.Addr).Info("starting codingevents")
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Fatal("graceful shutdown failed")
	}
}
