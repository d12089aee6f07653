package feeds

import (
	"errors"
	"fmt"
)

// ErrNoFeedsRequested is returned by the aggregator when it is asked to
// fetch an empty endpoint list. A valid stop always maps to at least one
// endpoint, so an empty list means an upstream invariant was violated.
var ErrNoFeedsRequested = errors.New("no feed endpoints requested")

// UnknownRouteError is returned when a route identifier falls outside
// the recognized alphabet. It is fatal to the calling query: it
// indicates a mapping defect, not a transient condition.
type UnknownRouteError struct {
	Route string
}

func (e *UnknownRouteError) Error() string {
	return fmt.Sprintf("unknown route: %s", e.Route)
}

// HTTPStatusError is returned by the fetcher for a non-2xx response.
// Like transport and decode failures it is absorbed by the aggregator
// and never fails the overall query.
type HTTPStatusError struct {
	URL        string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
}
