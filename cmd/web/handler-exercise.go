package main

import (
	"net/http"

	"github.com/myrjola/ironlog/internal/errors"
	"github.com/myrjola/ironlog/internal/plan"
)

// exerciseAddPOST appends a blank exercise to the day.
func (app *application) exerciseAddPOST(w http.ResponseWriter, r *http.Request) {
	day, ok := app.parseDayParam(w, r)
	if !ok {
		return
	}

	exercise, err := app.planService.AddExercise(r.Context(), day)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusCreated, exercise)
}

// setValueUpdate addresses one set's logged value.
type setValueUpdate struct {
	Set   int    `json:"set"`
	Value string `json:"value"`
}

type exerciseUpdateRequest struct {
	plan.ExerciseUpdate
	Rep    *setValueUpdate `json:"rep"`
	Weight *setValueUpdate `json:"weight"`
}

// exerciseUpdatePOST applies a partial edit to one exercise: any of the
// scalar fields plus a rep or weight value at a set index.
func (app *application) exerciseUpdatePOST(w http.ResponseWriter, r *http.Request) {
	day, ok := app.parseDayParam(w, r)
	if !ok {
		return
	}
	exerciseID := r.PathValue("exerciseID")
	var body exerciseUpdateRequest
	if !app.decodeJSON(w, r, &body) {
		return
	}

	ctx := r.Context()
	exercise, err := app.planService.UpdateExercise(ctx, day, exerciseID, body.ExerciseUpdate)
	if err == nil && body.Rep != nil {
		err = app.planService.UpdateRep(ctx, day, exerciseID, body.Rep.Set, body.Rep.Value)
	}
	if err == nil && body.Weight != nil {
		err = app.planService.UpdateWeight(ctx, day, exerciseID, body.Weight.Set, body.Weight.Value)
	}
	if err == nil && (body.Rep != nil || body.Weight != nil) {
		exercise, err = app.planService.Exercise(day, exerciseID)
	}
	if err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, exercise)
}

// exerciseDeletePOST stages the removal of one exercise.
func (app *application) exerciseDeletePOST(w http.ResponseWriter, r *http.Request) {
	day, ok := app.parseDayParam(w, r)
	if !ok {
		return
	}

	pending, err := app.planService.RequestDeleteExercise(day, r.PathValue("exerciseID"))
	if err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusAccepted, pending)
}
