package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/prepscout/internal/httpserver/deps"
	"github.com/MrSnakeDoc/prepscout/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/prepscout/internal/httpserver/mw"
)

func init() { Register(registerResearch) }

// each run fans out to a dozen external calls, so it is throttled per client
func registerResearch(r chi.Router, d deps.Deps) {
	r.With(mw.RateLimit(mw.RateLimitConfig{
		Burst:             d.RateLimitBurst,
		RefillPerIPPerMin: d.RateLimitPerMinute,
		MaxEntries:        10_000,
		TrustProxy:        d.TrustProxy,
	})).Get("/research", handlers.Research(d))
}
