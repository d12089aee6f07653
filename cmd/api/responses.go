package main

import (
	"encoding/json"
	"net/http"

	"nexttrain.nyc/internal/models"
)

func (app *application) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	w.Header().Set("Content-Type", "application/json")

	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
