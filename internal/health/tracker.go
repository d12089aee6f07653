// Package health tracks cumulative realtime feed failures and derives a
// coarse liveness status for display. It is a signal, not a circuit
// breaker: a tracker in the Error state never disables fetching.
package health

import "sync/atomic"

// Status is the two-valued health classification exposed to callers.
type Status int

const (
	StatusOk Status = iota
	StatusError
)

func (s Status) String() string {
	if s == StatusError {
		return "error"
	}
	return "ok"
}

// failureThreshold is the cumulative failure count above which the
// tracker reports StatusError.
const failureThreshold = 10

// Tracker counts individual feed fetch failures. Record is safe to call
// concurrently from fetch goroutines.
type Tracker struct {
	failures atomic.Uint32
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Record notes one failed fetch.
func (t *Tracker) Record() {
	t.failures.Add(1)
}

// Count returns the cumulative failure count since startup or the last Reset.
func (t *Tracker) Count() uint32 {
	return t.failures.Load()
}

// Reset clears the failure count, returning the tracker to StatusOk.
func (t *Tracker) Reset() {
	t.failures.Store(0)
}

// Status reports StatusError once more than failureThreshold failures
// have accumulated.
func (t *Tracker) Status() Status {
	if t.Count() > failureThreshold {
		return StatusError
	}
	return StatusOk
}
