package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/prepscout/internal/httpserver/deps"
	"github.com/MrSnakeDoc/prepscout/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/prepscout/internal/httpserver/mw"
)

func init() { Register(registerHealth) }

func registerHealth(r chi.Router, d deps.Deps) {
	ops := r.With(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger))
	ops.Get("/healthz", handlers.Healthz(d))
	ops.Get("/readyz", handlers.Readyz(d))
}
