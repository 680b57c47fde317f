package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/prepscout/internal/httpserver/deps"
)

// Index renders the empty search form.
func Index(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, http.StatusOK, newPageData(d), d.Logger)
	}
}
