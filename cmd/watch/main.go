// Command watch prints a continuously refreshing arrival board for one
// subway stop.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"nexttrain.nyc/internal/app"
	"nexttrain.nyc/internal/checker"
	"nexttrain.nyc/internal/config"
	"nexttrain.nyc/internal/health"
	"nexttrain.nyc/internal/models"
)

func main() {
	var configPath string
	var stopID string
	var intervalSeconds int

	flag.StringVar(&configPath, "config", "", "Path to a YAML config file (optional)")
	flag.StringVar(&stopID, "stop", "", "GTFS stop ID to watch (e.g. 101N)")
	flag.IntVar(&intervalSeconds, "interval", 0, "Refresh interval in seconds, 5-120 (overrides config)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	if stopID == "" {
		fmt.Fprintln(os.Stderr, "usage: watch -stop STOP_ID [-config config.yml] [-interval SECONDS]")
		os.Exit(2)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if intervalSeconds != 0 {
		cfg.Realtime.PollIntervalSeconds = intervalSeconds
		if err := cfg.Validate(); err != nil {
			logger.Error("invalid interval", "error", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Loading static GTFS schedule from %s ...\n", cfg.GTFS.Source)
	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	monitor := checker.NewMonitor(application.Checker, cfg.Realtime.PollInterval(), logger)
	monitor.Run(ctx, stopID, func(status *models.StopStatus, err error) {
		if err != nil {
			fmt.Printf("\n!!! %v\n", err)
			cancel() // fatal errors mean a bad stop or mapping defect; re-polling won't help
			return
		}
		printBoard(status, application.Checker.Health())
	})

	fmt.Println("\nGoodbye.")
}

func printBoard(status *models.StopStatus, h health.Status) {
	name := status.StopName
	if name == "" {
		name = status.StopID
	}

	fmt.Printf("\n=== %s (%s) at %s ===\n", name, status.StopID, time.Now().Format("15:04:05"))
	if h == health.StatusError {
		fmt.Println("!!! DEGRADED: repeated feed failures, data may be stale")
	}

	routes := append([]string(nil), status.Routes...)
	sort.Strings(routes)
	for _, routeID := range routes {
		arrivals := status.TrainArrivals[routeID]
		if len(arrivals) == 0 {
			fmt.Printf("  %-4s no upcoming trains\n", routeID)
			continue
		}
		for _, arrival := range arrivals {
			fmt.Printf("  %-4s %-28s (%ds)\n", arrival.RouteID, arrival.HumanTime, arrival.ArrivalSeconds)
		}
	}
}
