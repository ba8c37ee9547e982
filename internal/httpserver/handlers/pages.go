package handlers

import (
	"net/http"

	"github.com/mkvet/mkvet/internal/httpserver/deps"
)

// Pages serves the raw documentation tree so authors can click through nav
// paths exactly as the validator resolved them.
func Pages(d deps.Deps) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(d.DocRoot))
	return func(w http.ResponseWriter, r *http.Request) {
		fileServer.ServeHTTP(w, r)
	}
}
