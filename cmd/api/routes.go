package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.HandlerFunc(http.MethodGet, "/api/v1/stops", app.stopsHandler)
	router.HandlerFunc(http.MethodGet, "/api/v1/stops/:id/status", app.stopStatusHandler)
	router.HandlerFunc(http.MethodGet, "/api/v1/health", app.healthHandler)
	router.HandlerFunc(http.MethodPost, "/api/v1/health/reset", app.healthResetHandler)

	return router
}
