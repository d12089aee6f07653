package main

import (
	"net/http"

	"nexttrain.nyc/internal/models"
)

func (app *application) stopsHandler(w http.ResponseWriter, r *http.Request) {
	app.sendResponse(w, r, models.NewOKResponse(app.Schedule.Stops()))
}
