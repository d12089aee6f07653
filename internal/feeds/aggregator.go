package feeds

import (
	"context"
	"log/slog"

	"github.com/jamespfennell/gtfs"

	"nexttrain.nyc/internal/health"
	"nexttrain.nyc/internal/logging"
)

// FeedFetcher fetches and decodes a single feed endpoint.
type FeedFetcher interface {
	Fetch(ctx context.Context, endpoint Endpoint) (*gtfs.Realtime, error)
}

// Aggregator fans a query's endpoint list out to concurrent fetches and
// fans the results back in. Each endpoint is an independent failure
// domain: a failing feed is counted and logged, never propagated.
type Aggregator struct {
	fetcher FeedFetcher
	tracker *health.Tracker
	logger  *slog.Logger
}

func NewAggregator(fetcher FeedFetcher, tracker *health.Tracker, logger *slog.Logger) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		tracker: tracker,
		logger:  logger,
	}
}

// FetchAll fetches every endpoint concurrently and returns the
// successfully decoded feeds plus the number of failures in this call.
// It waits for all fetches to settle before returning. If every
// endpoint fails the result is an empty feed list, not an error;
// callers treat that as "no current data". An empty endpoint list is
// ErrNoFeedsRequested.
//
// Every individual failure increments the health tracker exactly once.
func (a *Aggregator) FetchAll(ctx context.Context, endpoints []Endpoint) ([]*gtfs.Realtime, int, error) {
	if len(endpoints) == 0 {
		return nil, 0, ErrNoFeedsRequested
	}

	type result struct {
		endpoint Endpoint
		feed     *gtfs.Realtime
		err      error
	}

	results := make(chan result, len(endpoints))
	for _, endpoint := range endpoints {
		go func(endpoint Endpoint) {
			feed, err := a.fetcher.Fetch(ctx, endpoint)
			results <- result{endpoint: endpoint, feed: feed, err: err}
		}(endpoint)
	}

	feeds := make([]*gtfs.Realtime, 0, len(endpoints))
	failures := 0
	for range endpoints {
		res := <-results
		if res.err != nil {
			failures++
			a.tracker.Record()
			logging.LogError(a.logger, "failed to fetch feed", res.err,
				slog.String("endpoint", string(res.endpoint)),
				slog.String("component", "feed_aggregator"))
			continue
		}
		feeds = append(feeds, res.feed)
	}

	return feeds, failures, nil
}
