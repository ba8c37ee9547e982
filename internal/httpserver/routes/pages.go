package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/mkvet/mkvet/internal/httpserver/deps"
	"github.com/mkvet/mkvet/internal/httpserver/handlers"
	"github.com/mkvet/mkvet/internal/httpserver/mw"
)

func init() { Register(registerPages) }

func registerPages(r chi.Router, d deps.Deps) {
	r.With(mw.NoCache()).Get("/*", handlers.Pages(d))
}
