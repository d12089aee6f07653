// Package feeds maps subway routes to the MTA GTFS-Realtime feed
// endpoints that cover them, fetches those endpoints, and aggregates the
// decoded results. Each feed covers a fixed group of lines; the numbered
// lines ride on the base URL with no suffix.
package feeds

import (
	"sort"
	"strings"
)

// Endpoint identifies one realtime feed. The zero value is the default
// feed for the numbered lines (1-7); every other endpoint is a suffix
// appended to the base URL with a hyphen.
type Endpoint string

const (
	EndpointDefault Endpoint = ""
	EndpointACE     Endpoint = "ace"
	EndpointBDFM    Endpoint = "bdfm"
	EndpointG       Endpoint = "g"
	EndpointJZ      Endpoint = "jz"
	EndpointNQRW    Endpoint = "nqrw"
	EndpointL       Endpoint = "l"
	EndpointSIR     Endpoint = "si"
)

// endpointForRoute is the fixed partition of the route alphabet into
// feed groups. Express variants are stripped before lookup.
var endpointForRoute = map[string]Endpoint{
	"A": EndpointACE, "C": EndpointACE, "E": EndpointACE,
	"B": EndpointBDFM, "D": EndpointBDFM, "F": EndpointBDFM, "M": EndpointBDFM,
	"G":  EndpointG,
	"J":  EndpointJZ,
	"Z":  EndpointJZ,
	"N":  EndpointNQRW,
	"Q":  EndpointNQRW,
	"R":  EndpointNQRW,
	"W":  EndpointNQRW,
	"L":  EndpointL,
	"SI": EndpointSIR,
	"1":  EndpointDefault, "2": EndpointDefault, "3": EndpointDefault,
	"4": EndpointDefault, "5": EndpointDefault, "6": EndpointDefault,
	"7": EndpointDefault,
}

// EndpointsForRoutes returns the minimal, duplicate-free list of feed
// endpoints that cover the given routes. A single unrecognized route
// fails the whole mapping with an UnknownRouteError rather than being
// dropped, since it indicates a mapping defect.
//
// The input set is iterated in sorted order so a given route set always
// yields the same endpoint order, but callers must not depend on that
// order: aggregation is commutative over feeds.
func EndpointsForRoutes(routes map[string]struct{}) ([]Endpoint, error) {
	ids := make([]string, 0, len(routes))
	for id := range routes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var endpoints []Endpoint
	seen := map[Endpoint]struct{}{}
	for _, id := range ids {
		// A trailing X marks an express variant; it shares the base
		// route's feed.
		base := strings.TrimSuffix(id, "X")

		endpoint, ok := endpointForRoute[base]
		if !ok {
			return nil, &UnknownRouteError{Route: id}
		}
		if _, dup := seen[endpoint]; dup {
			continue
		}
		seen[endpoint] = struct{}{}
		endpoints = append(endpoints, endpoint)
	}
	return endpoints, nil
}
