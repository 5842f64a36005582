package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Static paths (/me, /token, /version) take
// precedence over the /{type} partition routes.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withCORS(), withGZip)

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.listTypes)
		r.Get("/version", h.getServerVersion)
		r.Post("/token", h.login)
	})

	router.With(h.auth).Get("/me", h.me)

	router.Route("/{type}", func(r chi.Router) {
		r.Get("/", h.list)
		r.Get("/{id}", h.get)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/", h.add)
			r.Put("/{id}", h.update)
			r.Delete("/{id}", h.deleteObject)

			r.Group(func(r chi.Router) {
				r.Use(h.requireSecretsAccess)

				r.Get("/{id}/secrets", h.listSecrets)
				r.Post("/{id}/secrets", h.putSecret)
				r.Get("/{id}/secrets_values", h.getSecretValues)
				r.Get("/{id}/secrets/{key}", h.getSecret)
				r.Delete("/{id}/secrets/{key}", h.deleteSecret)
			})
		})
	})

	return router
}
