package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// routes without authorization
	router.Get("/api/version", h.getServerVersion)

	// caller routes
	router.Group(func(r chi.Router) {
		if h.tokenSignKey != "" {
			r.Use(h.auth)
		}

		r.Route("/api/vault", func(r chi.Router) {
			r.Post("/message", h.handleMessage)
			r.Get("/wait", h.awaitUnlock)
			r.Get("/status", h.getStatus)
		})

		r.Route("/api/credentials", func(r chi.Router) {
			r.Get("/", h.listCredentials)
			r.Post("/", h.addCredential)
			r.Put("/{index}", h.updateCredential)
			r.Delete("/{index}", h.deleteCredential)
			r.Post("/{index}/reveal", h.revealCredential)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
