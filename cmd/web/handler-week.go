package main

import (
	"net/http"

	"github.com/myrjola/ironlog/internal/errors"
	"github.com/myrjola/ironlog/internal/plan"
)

type daySummary struct {
	ExerciseCount  int `json:"exerciseCount"`
	CompletedCount int `json:"completedCount"`
}

type dayResponse struct {
	plan.DayView
	Summary daySummary `json:"summary"`
}

type weekResponse struct {
	Label string           `json:"label"`
	Start string           `json:"start"`
	Days  []dayResponse    `json:"days"`
	Stats plan.WeeklyStats `json:"stats"`
}

// weekGET returns the live week. Fetching the week also runs the rollover
// check, so the first request after a week boundary archives the old week.
func (app *application) weekGET(w http.ResponseWriter, r *http.Request) {
	if _, err := app.planService.Activate(r.Context()); err != nil {
		app.serverError(w, r, err)
		return
	}

	view := app.planService.Week()
	resp := weekResponse{
		Label: view.Label,
		Start: view.Start.Format("2006-01-02"),
		Days:  make([]dayResponse, 0, len(view.Days)),
		Stats: app.planService.WeeklyStats(),
	}
	for _, day := range view.Days {
		summary := daySummary{ExerciseCount: len(day.Exercises)}
		for _, exercise := range day.Exercises {
			if exercise.Completed {
				summary.CompletedCount++
			}
		}
		resp.Days = append(resp.Days, dayResponse{DayView: day, Summary: summary})
	}

	app.writeJSON(w, r, http.StatusOK, resp)
}

// weekCompletePOST stages a manual archive of the live week.
func (app *application) weekCompletePOST(w http.ResponseWriter, r *http.Request) {
	pending, err := app.planService.RequestCompleteWeek()
	if err != nil {
		if errors.Is(err, plan.ErrEmptyWeek) {
			app.clientError(w, r, http.StatusConflict, "the week has no exercises to archive")
			return
		}
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusAccepted, pending)
}

// dayTitlePOST renames one weekday.
func (app *application) dayTitlePOST(w http.ResponseWriter, r *http.Request) {
	day, ok := app.parseDayParam(w, r)
	if !ok {
		return
	}
	var body struct {
		Title string `json:"title"`
	}
	if !app.decodeJSON(w, r, &body) {
		return
	}

	if err := app.planService.SetTitle(r.Context(), day, body.Title); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, map[string]string{"title": body.Title})
}
