package main

import (
	"net/http"
	"strings"

	"github.com/myrjola/ironlog/internal/errors"
	"github.com/myrjola/ironlog/internal/plan"
)

// generatePOST asks the generator for a routine around a training focus and
// appends it to the day.
func (app *application) generatePOST(w http.ResponseWriter, r *http.Request) {
	day, ok := app.parseDayParam(w, r)
	if !ok {
		return
	}
	var body struct {
		Focus string `json:"focus"`
	}
	if !app.decodeJSON(w, r, &body) {
		return
	}
	if strings.TrimSpace(body.Focus) == "" {
		app.clientError(w, r, http.StatusBadRequest, "focus must not be empty")
		return
	}

	exercises, err := app.planService.GenerateExercises(r.Context(), day, body.Focus)
	if err != nil {
		if errors.Is(err, plan.ErrNoGenerator) {
			app.clientError(w, r, http.StatusServiceUnavailable, "workout generation is not configured")
			return
		}
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusCreated, exercises)
}
