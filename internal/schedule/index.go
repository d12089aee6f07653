// Package schedule holds the static subway schedule and answers the
// lookups the realtime pipeline needs: stop validity, stop names, the
// routes serving a stop, and route display names. The index is built
// once at startup and is immutable afterwards, so it is safe for
// concurrent readers.
package schedule

import (
	"sort"

	"github.com/jamespfennell/gtfs"
)

// StopInfo is a stop identifier with its display name, used for listings.
type StopInfo struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Index provides read-only lookups over a parsed static GTFS dataset.
type Index struct {
	stopNames    map[string]string
	stopIDByName map[string]string
	routeNames   map[string]string
	routesByStop map[string]map[string]struct{}
	stops        []StopInfo
}

// NewIndex builds an Index from parsed static GTFS data.
func NewIndex(static *gtfs.Static) *Index {
	idx := &Index{
		stopNames:    make(map[string]string, len(static.Stops)),
		stopIDByName: make(map[string]string, len(static.Stops)),
		routeNames:   make(map[string]string, len(static.Routes)),
		routesByStop: map[string]map[string]struct{}{},
	}

	idx.stops = make([]StopInfo, 0, len(static.Stops))
	for _, stop := range static.Stops {
		idx.stops = append(idx.stops, StopInfo{ID: stop.Id, Name: stop.Name})
		if stop.Name != "" {
			idx.stopNames[stop.Id] = stop.Name
			idx.stopIDByName[stop.Name] = stop.Id
		} else {
			idx.stopNames[stop.Id] = ""
		}
	}
	sort.Slice(idx.stops, func(i, j int) bool { return idx.stops[i].ID < idx.stops[j].ID })

	for _, route := range static.Routes {
		idx.routeNames[route.Id] = route.ShortName
	}

	// A route serves a stop if any of its trips visits that stop.
	for i := range static.Trips {
		trip := &static.Trips[i]
		if trip.Route == nil {
			continue
		}
		for _, stopTime := range trip.StopTimes {
			if stopTime.Stop == nil {
				continue
			}
			stopID := stopTime.Stop.Id
			routes, ok := idx.routesByStop[stopID]
			if !ok {
				routes = map[string]struct{}{}
				idx.routesByStop[stopID] = routes
			}
			routes[trip.Route.Id] = struct{}{}
		}
	}

	return idx
}

// IsValidStop reports whether the stop identifier exists in the schedule.
func (idx *Index) IsValidStop(id string) bool {
	_, ok := idx.stopNames[id]
	return ok
}

// StopName returns the display name for a stop, if it has one.
func (idx *Index) StopName(id string) (string, bool) {
	name, ok := idx.stopNames[id]
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// StopIDForName returns the identifier of the stop with the given display name.
func (idx *Index) StopIDForName(name string) (string, bool) {
	id, ok := idx.stopIDByName[name]
	return id, ok
}

// RoutesServing returns the identifiers of all routes with at least one
// trip visiting the stop. The returned set is a copy.
func (idx *Index) RoutesServing(stopID string) map[string]struct{} {
	routes := make(map[string]struct{}, len(idx.routesByStop[stopID]))
	for id := range idx.routesByStop[stopID] {
		routes[id] = struct{}{}
	}
	return routes
}

// RouteDisplayName returns the short name of a route, if it has one.
func (idx *Index) RouteDisplayName(id string) (string, bool) {
	name, ok := idx.routeNames[id]
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// Stops returns all stops sorted by identifier.
func (idx *Index) Stops() []StopInfo {
	return idx.stops
}
