package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jamespfennell/gtfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexttrain.nyc/internal/app"
	"nexttrain.nyc/internal/config"
	"nexttrain.nyc/internal/models"
	"nexttrain.nyc/internal/schedule"
)

// newTestApplication builds an application whose realtime feeds come
// from a stub server returning an empty (valid) protobuf message.
func newTestApplication(t *testing.T) *application {
	t.Helper()

	feedServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/x-protobuf")
		_, _ = w.Write([]byte{})
	}))
	t.Cleanup(feedServer.Close)

	cfg := config.Default()
	cfg.Server.Env = "test"
	cfg.Realtime.BaseURL = feedServer.URL

	static := &gtfs.Static{
		Routes: []gtfs.Route{{Id: "1", ShortName: "1"}, {Id: "QQ"}},
		Stops: []gtfs.Stop{
			{Id: "101N", Name: "Van Cortlandt Park-242 St"},
			{Id: "BAD1", Name: "Mapping Defect"},
		},
	}
	static.Trips = []gtfs.ScheduledTrip{
		{
			ID:        "t1",
			Route:     &static.Routes[0],
			StopTimes: []gtfs.ScheduledStopTime{{Stop: &static.Stops[0]}},
		},
		{
			ID:        "t2",
			Route:     &static.Routes[1], // "QQ" is outside the feed alphabet
			StopTimes: []gtfs.ScheduledStopTime{{Stop: &static.Stops[1]}},
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &application{Application: app.NewWithSchedule(cfg, logger, schedule.NewIndex(static))}
}

func doRequest(t *testing.T, app *application, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	app.routes().ServeHTTP(rr, req)
	return rr
}

func TestStopStatusHandler(t *testing.T) {
	app := newTestApplication(t)

	rr := doRequest(t, app, http.MethodGet, "/api/v1/stops/101N/status")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response models.ResponseModel
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "OK", response.Text)

	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "101N", data["stopId"])
	assert.Equal(t, "Van Cortlandt Park-242 St", data["stopName"])

	routes, ok := data["routes"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"1"}, routes)

	arrivals, ok := data["trainArrivals"].(map[string]interface{})
	require.True(t, ok)
	assert.Empty(t, arrivals, "empty feed yields no arrivals but a valid status")
}

func TestStopStatusHandlerInvalidStop(t *testing.T) {
	app := newTestApplication(t)

	rr := doRequest(t, app, http.MethodGet, "/api/v1/stops/NOPE/status")

	require.Equal(t, http.StatusNotFound, rr.Code)

	var response models.ResponseModel
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, http.StatusNotFound, response.Code)
	assert.Contains(t, response.Text, "NOPE")
}

func TestStopStatusHandlerUnknownRoute(t *testing.T) {
	app := newTestApplication(t)

	rr := doRequest(t, app, http.MethodGet, "/api/v1/stops/BAD1/status")

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	var response models.ResponseModel
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Contains(t, response.Text, "QQ")
}

func TestStopsHandler(t *testing.T) {
	app := newTestApplication(t)

	rr := doRequest(t, app, http.MethodGet, "/api/v1/stops")

	require.Equal(t, http.StatusOK, rr.Code)

	var response models.ResponseModel
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))

	stops, ok := response.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, stops, 2)

	first, ok := stops[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "101N", first["id"], "stops are sorted by ID")
}
