// Package app wires the schedule index, realtime pipeline and health
// tracker into one Application shared by the HTTP API and the watch CLI.
package app

import (
	"log/slog"

	"nexttrain.nyc/internal/checker"
	"nexttrain.nyc/internal/config"
	"nexttrain.nyc/internal/feeds"
	"nexttrain.nyc/internal/health"
	"nexttrain.nyc/internal/schedule"
)

// Application holds the dependencies for the HTTP handlers and the
// watch CLI.
type Application struct {
	Config   *config.Config
	Logger   *slog.Logger
	Schedule *schedule.Index
	Health   *health.Tracker
	Checker  *checker.Checker
}

// New loads the static schedule and assembles the realtime pipeline.
func New(cfg *config.Config, logger *slog.Logger) (*Application, error) {
	index, err := schedule.Load(cfg.GTFS.Source)
	if err != nil {
		return nil, err
	}
	return NewWithSchedule(cfg, logger, index), nil
}

// NewWithSchedule assembles an Application around an already-built
// schedule index. Used by tests and anything that loads GTFS itself.
func NewWithSchedule(cfg *config.Config, logger *slog.Logger, index *schedule.Index) *Application {
	tracker := health.NewTracker()
	fetcher := feeds.NewFetcher(cfg.Realtime.BaseURL, logger)
	aggregator := feeds.NewAggregator(fetcher, tracker, logger)

	return &Application{
		Config:   cfg,
		Logger:   logger,
		Schedule: index,
		Health:   tracker,
		Checker:  checker.New(index, aggregator, tracker, logger, cfg.Realtime.ArrivalsPerRoute),
	}
}
