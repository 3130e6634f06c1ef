package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withMetrics)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	// service routes
	router.Get("/health", h.health)
	router.Handle("/metrics", promhttp.Handler())

	// routes authenticated with Basic credentials
	router.Route("/users", func(r chi.Router) {
		r.Use(h.basicAuth)

		r.Post("/{username}", h.createUser)
		r.Put("/{username}", h.createUser)

		r.Route("/@me", func(r chi.Router) {
			r.Get("/", h.getCurrentUser)
			r.Patch("/", h.updateCurrentUser)
			r.Delete("/", h.deleteCurrentUser)

			r.Route("/devices", func(r chi.Router) {
				r.Get("/", h.listDevices)
				r.Post("/", h.createDevice)
				r.Delete("/", h.deleteDevices)
				r.Patch("/{device_name}", h.updateDevice)
			})

			r.Route("/messages", func(r chi.Router) {
				r.Get("/", h.listMessages)
				r.Post("/", h.createMessage)
				r.Delete("/", h.deleteMessages)

				r.Route("/{message_id}", func(r chi.Router) {
					r.Get("/", h.getMessage)
					r.Patch("/", h.updateMessage)

					r.Put("/views/{device_name}", h.markViewed)

					r.Get("/links", h.listLinks)
					r.Post("/links", h.createLink)
					r.Delete("/links/{token}", h.deleteLink)

					r.Get("/files", h.listFiles)
					r.Put("/files/{file_name}", h.uploadFile)
					r.Get("/files/{file_name}", h.downloadFile)
					r.Delete("/files/{file_name}", h.deleteFile)

					r.Get("/permissions", h.listPermissions)
					r.Get("/permissions/{user_id}", h.getPermission)
					r.Put("/permissions/{user_id}", h.setPermission)
					r.Delete("/permissions/{user_id}", h.deletePermission)
				})
			})
		})
	})

	// public routes
	router.Route("/messages/{message_id}", func(r chi.Router) {
		// link lookup served to other instances running in remote auth mode
		r.Get("/links", h.lookupLink)

		r.Group(func(r chi.Router) {
			r.Use(h.linkAuth)
			r.Get("/", h.getLinkedMessage)
			r.Get("/files/{file_name}", h.downloadLinkedFile)
		})
	})

	return router
}
