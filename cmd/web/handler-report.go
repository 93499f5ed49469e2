package main

import (
	"net/http"
	"strconv"
	"time"
)

// weekReportGET returns the live week's aggregate statistics.
func (app *application) weekReportGET(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, app.planService.WeeklyStats())
}

// monthReportGET returns one calendar month's aggregate statistics. The month
// and year query parameters default to the current month.
func (app *application) monthReportGET(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	month := now.Month()
	year := now.Year()

	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		m, err := strconv.Atoi(monthStr)
		if err != nil || m < 1 || m > 12 {
			app.clientError(w, r, http.StatusBadRequest, "month must be between 1 and 12")
			return
		}
		month = time.Month(m)
	}
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil {
			app.clientError(w, r, http.StatusBadRequest, "year must be a number")
			return
		}
		year = y
	}

	app.writeJSON(w, r, http.StatusOK, app.planService.MonthlyStats(month, year))
}
