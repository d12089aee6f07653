// Package arrivals reduces aggregated realtime feeds into per-route
// arrival lists for a single stop.
package arrivals

import (
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jamespfennell/gtfs"

	"nexttrain.nyc/internal/models"
)

// RouteNames resolves route identifiers to display names.
type RouteNames interface {
	RouteDisplayName(id string) (string, bool)
}

// DefaultPerRouteCap is how many upcoming arrivals each route keeps.
const DefaultPerRouteCap = 2

// Reduce filters the decoded feeds down to predictions for one stop and
// groups them by route, sorted soonest-first and truncated to cap
// entries per route.
//
// now is sampled once by the caller and reused for every prediction so
// one query sees a single consistent snapshot. Predictions at or before
// now are discarded, as are predictions whose trip carries no route
// identifier (trip updates are expected to always have one).
func Reduce(feeds []*gtfs.Realtime, stopID string, now time.Time, cap int, names RouteNames) map[string][]models.TrainArrival {
	if cap <= 0 {
		cap = DefaultPerRouteCap
	}

	// route ID -> seconds until each predicted arrival
	routeTimes := map[string][]int64{}
	nowUnix := now.Unix()

	for _, feed := range feeds {
		for i := range feed.Trips {
			trip := &feed.Trips[i]
			routeID := trip.ID.RouteID
			if routeID == "" {
				continue
			}
			for _, update := range trip.StopTimeUpdates {
				if update.StopID == nil || *update.StopID != stopID {
					continue
				}
				if update.Arrival == nil || update.Arrival.Time == nil {
					continue
				}
				seconds := update.Arrival.Time.Unix() - nowUnix
				if seconds <= 0 {
					continue
				}
				routeTimes[routeID] = append(routeTimes[routeID], seconds)
			}
		}
	}

	trainArrivals := make(map[string][]models.TrainArrival, len(routeTimes))
	for routeID, times := range routeTimes {
		sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })
		if len(times) > cap {
			times = times[:cap]
		}

		routeName, _ := names.RouteDisplayName(routeID)

		list := make([]models.TrainArrival, 0, len(times))
		for _, seconds := range times {
			arrivalTime := now.Add(time.Duration(seconds) * time.Second)
			list = append(list, models.TrainArrival{
				RouteID:        routeID,
				RouteName:      routeName,
				ArrivalSeconds: seconds,
				HumanTime:      humanize.RelTime(arrivalTime, now, "ago", "from now"),
			})
		}
		trainArrivals[routeID] = list
	}

	return trainArrivals
}
