package main

import (
	"io"
	"net/http"

	"github.com/myrjola/ironlog/internal/errors"
	"github.com/myrjola/ironlog/internal/plan"
)

// maxBackupBytes bounds import uploads.
const maxBackupBytes = 16 << 20

// backupGET exports everything the planner stores as one JSON document.
func (app *application) backupGET(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Disposition", `attachment; filename="ironlog-backup.json"`)
	app.writeJSON(w, r, http.StatusOK, app.planService.Export())
}

// backupImportPOST validates an uploaded backup document and stages the
// import behind a confirmation.
func (app *application) backupImportPOST(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBackupBytes))
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	doc, err := plan.ParseBackup(body)
	if err != nil {
		if errors.Is(err, plan.ErrInvalidBackup) {
			app.clientError(w, r, http.StatusBadRequest, "backup must contain history and currentWeek")
			return
		}
		app.clientError(w, r, http.StatusBadRequest, "malformed backup document")
		return
	}

	app.writeJSON(w, r, http.StatusAccepted, app.planService.RequestImport(doc))
}
