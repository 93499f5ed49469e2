package main

import (
	"net/http"
)

func (app *application) routes() *http.ServeMux {
	mux := http.NewServeMux()

	api := func(next http.Handler) http.Handler {
		return app.recoverPanic(app.logAndTraceRequest(secureHeaders(
			app.crossOriginProtection(noCache(app.timeout(next))))))
	}

	mux.Handle("GET /api/week", api(http.HandlerFunc(app.weekGET)))
	mux.Handle("POST /api/week/complete", api(http.HandlerFunc(app.weekCompletePOST)))

	mux.Handle("POST /api/days/{day}/title", api(http.HandlerFunc(app.dayTitlePOST)))
	mux.Handle("POST /api/days/{day}/exercises", api(http.HandlerFunc(app.exerciseAddPOST)))
	mux.Handle("POST /api/days/{day}/exercises/{exerciseID}", api(http.HandlerFunc(app.exerciseUpdatePOST)))
	mux.Handle("POST /api/days/{day}/exercises/{exerciseID}/delete", api(http.HandlerFunc(app.exerciseDeletePOST)))
	mux.Handle("POST /api/days/{day}/generate", api(http.HandlerFunc(app.generatePOST)))

	mux.Handle("GET /api/report/week", api(http.HandlerFunc(app.weekReportGET)))
	mux.Handle("GET /api/report/month", api(http.HandlerFunc(app.monthReportGET)))

	mux.Handle("GET /api/history", api(http.HandlerFunc(app.historyGET)))
	mux.Handle("GET /api/calendar/{date}", api(http.HandlerFunc(app.calendarGET)))

	mux.Handle("GET /api/backup", api(http.HandlerFunc(app.backupGET)))
	mux.Handle("POST /api/backup/import", api(http.HandlerFunc(app.backupImportPOST)))

	mux.Handle("POST /api/confirmations/{token}/{verdict}", api(http.HandlerFunc(app.confirmationPOST)))

	mux.Handle("GET /api/healthy", api(http.HandlerFunc(app.healthy)))

	return mux
}
