package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"nexttrain.nyc/internal/app"
	"nexttrain.nyc/internal/config"
)

// application holds the dependencies for the HTTP handlers.
type application struct {
	*app.Application
}

func main() {
	var configPath string
	var port int
	var gtfsSource string

	flag.StringVar(&configPath, "config", "", "Path to a YAML config file (optional)")
	flag.IntVar(&port, "port", 0, "API server port (overrides config)")
	flag.StringVar(&gtfsSource, "gtfs-source", "", "URL or path of a static GTFS zip (overrides config)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if port != 0 {
		cfg.Server.Port = port
	}
	if gtfsSource != "" {
		cfg.GTFS.Source = gtfsSource
	}

	logger.Info("loading static GTFS schedule", "source", cfg.GTFS.Source)
	application, err := newApplication(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}
	logger.Info("schedule loaded", "stops", len(application.Schedule.Stops()))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      application.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Server.Env)
	err = srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}

func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	inner, err := app.New(cfg, logger)
	if err != nil {
		return nil, err
	}
	return &application{Application: inner}, nil
}
