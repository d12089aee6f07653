// Package checker ties the schedule index, feed router, aggregator and
// reducer together into the top-level "what is coming to this stop?"
// query.
package checker

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/jamespfennell/gtfs"

	"nexttrain.nyc/internal/arrivals"
	"nexttrain.nyc/internal/feeds"
	"nexttrain.nyc/internal/health"
	"nexttrain.nyc/internal/logging"
	"nexttrain.nyc/internal/models"
)

// InvalidStopError is returned when a queried stop identifier is not in
// the schedule. Fatal to the query.
type InvalidStopError struct {
	StopID string
}

func (e *InvalidStopError) Error() string {
	return fmt.Sprintf("invalid stop ID: %s", e.StopID)
}

// ScheduleIndex is the static-schedule collaborator the checker reads from.
type ScheduleIndex interface {
	IsValidStop(id string) bool
	StopName(id string) (string, bool)
	RoutesServing(id string) map[string]struct{}
	RouteDisplayName(id string) (string, bool)
}

// FeedSource aggregates realtime feeds for a set of endpoints.
type FeedSource interface {
	FetchAll(ctx context.Context, endpoints []feeds.Endpoint) ([]*gtfs.Realtime, int, error)
}

// Checker answers stop status queries. Each query re-fetches the
// realtime feeds from scratch; nothing is cached across queries except
// the health tracker's failure count.
type Checker struct {
	schedule    ScheduleIndex
	source      FeedSource
	tracker     *health.Tracker
	logger      *slog.Logger
	perRouteCap int
	now         func() time.Time
}

func New(schedule ScheduleIndex, source FeedSource, tracker *health.Tracker, logger *slog.Logger, perRouteCap int) *Checker {
	if perRouteCap <= 0 {
		perRouteCap = arrivals.DefaultPerRouteCap
	}
	return &Checker{
		schedule:    schedule,
		source:      source,
		tracker:     tracker,
		logger:      logger,
		perRouteCap: perRouteCap,
		now:         time.Now,
	}
}

// GetStopStatus returns the current status of a stop with its upcoming
// train arrivals. It fails only on an invalid stop, an unknown route in
// the stop's serving set, or an empty endpoint list; individual feed
// failures are absorbed, so a query with zero healthy feeds still
// returns a valid (empty) status.
func (c *Checker) GetStopStatus(ctx context.Context, stopID string) (*models.StopStatus, error) {
	if !c.schedule.IsValidStop(stopID) {
		return nil, &InvalidStopError{StopID: stopID}
	}

	routes := c.schedule.RoutesServing(stopID)

	endpoints, err := feeds.EndpointsForRoutes(routes)
	if err != nil {
		return nil, err
	}

	realtimeFeeds, failures, err := c.source.FetchAll(ctx, endpoints)
	if err != nil {
		return nil, err
	}
	if failures > 0 {
		logging.LogOperation(c.logger, "degraded_feed_fetch",
			slog.String("stop_id", stopID),
			slog.Int("failed_feeds", failures),
			slog.Int("healthy_feeds", len(realtimeFeeds)))
	}

	now := c.now()
	trainArrivals := arrivals.Reduce(realtimeFeeds, stopID, now, c.perRouteCap, c.schedule)

	stopName, _ := c.schedule.StopName(stopID)
	return models.NewStopStatus(stopID, stopName, sortedRoutes(routes), trainArrivals), nil
}

// ArrivalsForRoute returns the upcoming arrivals for one route at a stop.
func (c *Checker) ArrivalsForRoute(ctx context.Context, stopID, routeID string) ([]models.TrainArrival, error) {
	status, err := c.GetStopStatus(ctx, stopID)
	if err != nil {
		return nil, err
	}
	return status.TrainArrivals[routeID], nil
}

// AllArrivals returns every upcoming arrival at a stop across routes,
// sorted soonest-first.
func (c *Checker) AllArrivals(ctx context.Context, stopID string) ([]models.TrainArrival, error) {
	status, err := c.GetStopStatus(ctx, stopID)
	if err != nil {
		return nil, err
	}

	var all []models.TrainArrival
	for _, list := range status.TrainArrivals {
		all = append(all, list...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].ArrivalSeconds < all[j].ArrivalSeconds
	})
	return all, nil
}

// FailureCount returns the cumulative feed failure count.
func (c *Checker) FailureCount() uint32 {
	return c.tracker.Count()
}

// ResetFailureCount clears the feed failure count.
func (c *Checker) ResetFailureCount() {
	c.tracker.Reset()
}

// Health reports the coarse feed health status.
func (c *Checker) Health() health.Status {
	return c.tracker.Status()
}

func sortedRoutes(routes map[string]struct{}) []string {
	ids := make([]string, 0, len(routes))
	for id := range routes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
