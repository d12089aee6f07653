package schedule

import (
	"testing"

	"github.com/jamespfennell/gtfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStatic() *gtfs.Static {
	routeA := gtfs.Route{Id: "A", ShortName: "A"}
	route1 := gtfs.Route{Id: "1", ShortName: "1"}
	routeNoName := gtfs.Route{Id: "H"}

	stop101N := gtfs.Stop{Id: "101N", Name: "Van Cortlandt Park-242 St"}
	stopA02 := gtfs.Stop{Id: "A02", Name: "Inwood-207 St"}
	stopUnnamed := gtfs.Stop{Id: "X99"}

	static := &gtfs.Static{
		Routes: []gtfs.Route{routeA, route1, routeNoName},
		Stops:  []gtfs.Stop{stopA02, stop101N, stopUnnamed},
	}
	static.Trips = []gtfs.ScheduledTrip{
		{
			ID:    "trip-1",
			Route: &static.Routes[1],
			StopTimes: []gtfs.ScheduledStopTime{
				{Stop: &static.Stops[1]},
			},
		},
		{
			ID:    "trip-a",
			Route: &static.Routes[0],
			StopTimes: []gtfs.ScheduledStopTime{
				{Stop: &static.Stops[0]},
				{Stop: &static.Stops[1]},
			},
		},
	}
	return static
}

func TestIsValidStop(t *testing.T) {
	idx := NewIndex(testStatic())

	assert.True(t, idx.IsValidStop("101N"))
	assert.True(t, idx.IsValidStop("X99"))
	assert.False(t, idx.IsValidStop("nope"))
}

func TestStopName(t *testing.T) {
	idx := NewIndex(testStatic())

	name, ok := idx.StopName("101N")
	require.True(t, ok)
	assert.Equal(t, "Van Cortlandt Park-242 St", name)

	_, ok = idx.StopName("X99")
	assert.False(t, ok, "unnamed stop should report no name")

	_, ok = idx.StopName("missing")
	assert.False(t, ok)
}

func TestStopIDForName(t *testing.T) {
	idx := NewIndex(testStatic())

	id, ok := idx.StopIDForName("Inwood-207 St")
	require.True(t, ok)
	assert.Equal(t, "A02", id)

	_, ok = idx.StopIDForName("Nowhere")
	assert.False(t, ok)
}

func TestRoutesServing(t *testing.T) {
	idx := NewIndex(testStatic())

	routes := idx.RoutesServing("101N")
	assert.Len(t, routes, 2)
	assert.Contains(t, routes, "1")
	assert.Contains(t, routes, "A")

	routes = idx.RoutesServing("A02")
	assert.Len(t, routes, 1)
	assert.Contains(t, routes, "A")

	assert.Empty(t, idx.RoutesServing("X99"))
}

func TestRoutesServingReturnsCopy(t *testing.T) {
	idx := NewIndex(testStatic())

	routes := idx.RoutesServing("A02")
	delete(routes, "A")

	assert.Contains(t, idx.RoutesServing("A02"), "A")
}

func TestRouteDisplayName(t *testing.T) {
	idx := NewIndex(testStatic())

	name, ok := idx.RouteDisplayName("A")
	require.True(t, ok)
	assert.Equal(t, "A", name)

	_, ok = idx.RouteDisplayName("H")
	assert.False(t, ok, "route without a short name should report none")

	_, ok = idx.RouteDisplayName("Z")
	assert.False(t, ok)
}

func TestStopsSortedByID(t *testing.T) {
	idx := NewIndex(testStatic())

	stops := idx.Stops()
	require.Len(t, stops, 3)
	assert.Equal(t, "101N", stops[0].ID)
	assert.Equal(t, "A02", stops[1].ID)
	assert.Equal(t, "X99", stops[2].ID)
}
