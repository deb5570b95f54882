package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes behind bearer authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/sites", h.createSite)
		r.Post("/api/sync/soil-data/push", h.pushSoilData)
		r.Post("/api/sync/soil-metadata/push", h.pushSoilMetadata)
		r.Get("/api/sync/pull", h.pull)
	})

	return router
}
