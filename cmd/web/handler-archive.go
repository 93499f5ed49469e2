package main

import (
	"net/http"

	"github.com/myrjola/ironlog/internal/errors"
	"github.com/myrjola/ironlog/internal/plan"
)

// confirmationPOST resolves a pending action. The verdict path segment is
// either "accept" or "discard"; tokens are single-use.
func (app *application) confirmationPOST(w http.ResponseWriter, r *http.Request) {
	var accept bool
	switch r.PathValue("verdict") {
	case "accept":
		accept = true
	case "discard":
		accept = false
	default:
		http.NotFound(w, r)
		return
	}

	if err := app.planService.ResolveConfirmation(r.Context(), r.PathValue("token"), accept); err != nil {
		if errors.Is(err, plan.ErrUnknownConfirmation) {
			http.NotFound(w, r)
			return
		}
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, map[string]bool{"applied": accept})
}
