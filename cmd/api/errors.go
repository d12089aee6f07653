package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"nexttrain.nyc/internal/checker"
	"nexttrain.nyc/internal/feeds"
	"nexttrain.nyc/internal/models"
)

func (app *application) errorResponse(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(models.NewErrorResponse(status, text))
	if err != nil {
		app.Logger.Error("failed to encode error response", "error", err)
	}
}

func (app *application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.Logger.Error("internal server error", "error", err, "path", r.URL.Path)
	app.errorResponse(w, http.StatusInternalServerError, "internal server error")
}

// queryErrorResponse maps the fatal query errors onto HTTP statuses: a
// bad stop is the caller's mistake, while an unknown route or an empty
// endpoint list is a data defect on our side of the request.
func (app *application) queryErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var invalidStop *checker.InvalidStopError
	var unknownRoute *feeds.UnknownRouteError

	switch {
	case errors.As(err, &invalidStop):
		app.errorResponse(w, http.StatusNotFound, err.Error())
	case errors.As(err, &unknownRoute), errors.Is(err, feeds.ErrNoFeedsRequested):
		app.Logger.Error("stop status query failed", "error", err, "path", r.URL.Path)
		app.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
	default:
		app.serverErrorResponse(w, r, err)
	}
}
