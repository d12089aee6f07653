package main

import (
	"net/http"

	"nexttrain.nyc/internal/models"
)

type healthData struct {
	Status       string `json:"status"`
	FailureCount uint32 `json:"failureCount"`
}

func (app *application) healthHandler(w http.ResponseWriter, r *http.Request) {
	data := healthData{
		Status:       app.Checker.Health().String(),
		FailureCount: app.Checker.FailureCount(),
	}
	app.sendResponse(w, r, models.NewOKResponse(data))
}

func (app *application) healthResetHandler(w http.ResponseWriter, r *http.Request) {
	app.Checker.ResetFailureCount()
	app.healthHandler(w, r)
}
