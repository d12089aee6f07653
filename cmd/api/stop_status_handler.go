package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"nexttrain.nyc/internal/models"
)

func (app *application) stopStatusHandler(w http.ResponseWriter, r *http.Request) {
	params := httprouter.ParamsFromContext(r.Context())
	stopID := params.ByName("id")

	status, err := app.Checker.GetStopStatus(r.Context(), stopID)
	if err != nil {
		app.queryErrorResponse(w, r, err)
		return
	}

	app.sendResponse(w, r, models.NewOKResponse(status))
}
