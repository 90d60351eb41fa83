package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRecovery)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// accounts
	router.Group(func(r chi.Router) {
		r.Post("/createuser", h.register)
		r.Post("/login", h.login)
	})

	// game session broker
	router.Group(func(r chi.Router) {
		r.Post("/move", h.move)
		r.Post("/reset", h.reset)
	})

	router.Get("/status", h.status)
	router.Get("/version", h.getServerVersion)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.writeErrorMessage(w, r, http.StatusNotFound, msgNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
