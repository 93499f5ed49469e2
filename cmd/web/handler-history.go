package main

import (
	"net/http"
	"sort"

	"github.com/myrjola/ironlog/internal/plan"
)

// historyGET returns the archive grouped by calendar month, newest first.
func (app *application) historyGET(w http.ResponseWriter, r *http.Request) {
	months := app.planService.History()
	if months == nil {
		months = []plan.HistoryMonth{}
	}
	app.writeJSON(w, r, http.StatusOK, map[string]any{"months": months})
}

// calendarGET resolves one calendar date to its plan data, together with the
// set of dates that have completed training.
func (app *application) calendarGET(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}

	resolution := app.planService.ResolveDate(date)
	completed := make([]string, 0)
	for day := range app.planService.CompletedDates() {
		completed = append(completed, day)
	}
	sort.Strings(completed)

	app.writeJSON(w, r, http.StatusOK, map[string]any{
		"resolution":     resolution,
		"completedDates": completed,
	})
}
