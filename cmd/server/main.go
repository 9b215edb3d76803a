package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"skillupTracker/internal/config"
	"skillupTracker/internal/db"
	"skillupTracker/internal/httpapi"
	"skillupTracker/repository"
)

var log *logrus.Logger

func init() {
	log = logrus.New()
	log.Formatter = &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "severity",
			logrus.FieldKeyMsg:   "message",
		},
		TimestampFormat: time.RFC3339Nano,
	}
	log.Out = os.Stdout
}

func main() {
	// Load configuration. An absent signing secret is fatal: starting without
	// one would mean signing tokens with a publicly known value.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	log.Infof("Configuration loaded: %v", cfg)

	// Open DB. A failure here is logged but does not keep the listener from
	// starting: data requests simply fail until the store is usable.
	d, err := db.Open(cfg.Database.Path)
	if err != nil {
		log.Errorf("open db: %v", err)
	} else {
		defer func() {
			if err := d.Close(); err != nil {
				log.Errorf("close db: %v", err)
			}
		}()
	}

	srv := &httpapi.Server{
		Users:  repository.NewUserRepository(d),
		Skills: repository.NewSkillRepository(d),
		Secret: cfg.Auth.JWTSecret,
		Log:    log,
	}

	// Start HTTP
	shutdown, err := httpapi.Start(cfg, srv)
	if err != nil {
		log.Fatalf("start http: %v", err)
	}
	log.Infof("HTTP server listening on %s", cfg.HTTP.Address)

	// Wait for signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		log.Errorf("shutdown error: %v", err)
	}
}
