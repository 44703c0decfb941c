// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Every route is registered with its full path so
// that [CheckHTTPMethod] can match patterns against the request path.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, h.withMetrics, withGZip)

	router.Get("/metrics", h.metrics.Handler().ServeHTTP)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/refresh", h.refresh)
		r.Get("/api/auth/me", h.me)

		r.Get("/api/dashboard/stats", h.dashboardStats)
		r.Get("/api/dashboard/activity", h.dashboardActivity)

		r.Get("/api/compliance", h.listCompliance)
		r.Post("/api/compliance", h.createCompliance)
		r.Get("/api/compliance/{id}", h.getCompliance)
		r.Put("/api/compliance/{id}", h.updateCompliance)
		r.Delete("/api/compliance/{id}", h.deleteCompliance)

		r.Post("/api/documents/text", h.createDocumentFromText)
		r.Get("/api/documents", h.listDocuments)
		r.Get("/api/documents/{id}", h.getDocument)
		r.Get("/api/documents/{id}/content", h.documentContent)

		r.Group(func(r chi.Router) {
			r.Use(h.withRateLimit)

			r.Post("/api/ai/analyze", h.analyze)
			r.Post("/api/ai/assess-risk", h.assessRisk)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
