package main

import (
	"fmt"
	"net/http"
	"os"

	"shelter-dashboard/internal/adapters/storage/postgres"
	"shelter-dashboard/internal/config"
	"shelter-dashboard/internal/platform/logger"
	"shelter-dashboard/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    "shelter-dashboard",
	})

	opts := router.Options{
		Logger:       log,
		DataDir:      cfg.DataDir,
		ImagesDir:    cfg.ImagesDir,
		AuthMode:     cfg.AuthMode,
		SharedSecret: cfg.StaffSharedSecret,
	}

	if cfg.DBDSN != "" {
		db, err := postgres.Open(cfg.DBDSN)
		if err != nil {
			log.Error("db open failed", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		defer db.Close()
		opts.DB = db
	}

	h, err := router.NewRouter(opts)
	if err != nil {
		log.Error("router init failed", map[string]any{"err": err.Error()})
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", cfg.AppPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}
