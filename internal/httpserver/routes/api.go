package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/mkvet/mkvet/internal/httpserver/deps"
	"github.com/mkvet/mkvet/internal/httpserver/handlers"
)

func init() { Register(registerAPI) }

func registerAPI(r chi.Router, d deps.Deps) {
	r.Get("/api/config", handlers.Config(d))
	r.Get("/api/report", handlers.Report(d))
	r.Post("/api/reload", handlers.Reload(d))
}
