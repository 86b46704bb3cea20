// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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
	router.Use(middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/api/v1", func(r chi.Router) {
		// routes without authorization
		r.Get("/health", h.health)
		r.Get("/version", h.getServerVersion)
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
		r.Post("/auth/logout", h.logout)
		r.Get("/users/{id}", h.getUser)

		// any authenticated account, active or not
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/auth/me", h.me)
			r.Post("/auth/refresh", h.refresh)
		})

		// active accounts only
		r.Group(func(r chi.Router) {
			r.Use(h.authActive)

			r.Put("/users/{id}", h.updateUser)
			r.Delete("/users/{id}", h.deleteUser)
			r.Post("/users/{id}/activate", h.activateUser)
			r.Post("/users/{id}/deactivate", h.deactivateUser)
			r.Post("/users/{id}/verify", h.verifyUser)
			r.Post("/users/{id}/role", h.changeRole)

			r.Post("/guides", h.createGuide)
			r.Put("/guides/{id}", h.updateGuide)
			r.Delete("/guides/{id}", h.deleteGuide)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
