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
	router.Use(h.withTraceID, h.withLogging, middleware.Compress(5, "application/json"))

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getVersion)

		r.Route("/memos", func(r chi.Router) {
			r.Get("/", h.listMemos)
			r.Post("/", h.createMemo)
			r.Get("/{id}", h.getMemo)
			r.Put("/{id}", h.updateMemo)
			r.Delete("/{id}", h.deleteMemo)
		})
		r.Get("/cache/stats", h.getCacheStats)

		r.Route("/network", func(r chi.Router) {
			r.Get("/", h.getNetworkState)
			r.Post("/check", h.checkNetwork)
			r.Post("/os-state", h.reportOSState)
		})

		r.Route("/sync", func(r chi.Router) {
			r.Post("/", h.runSync)
			r.Get("/status", h.getSyncStatus)
			r.Get("/operations", h.getPendingOperations)
			r.Post("/operations", h.addPendingOperation)
		})

		r.Route("/conflicts", func(r chi.Router) {
			r.Get("/", h.listConflicts)
			r.Post("/{id}/resolve", h.resolveConflict)
		})

		r.Route("/startup", func(r chi.Router) {
			r.Post("/load", h.loadStartup)
			r.Get("/state", h.getStartupState)
		})

		r.Route("/session", func(r chi.Router) {
			r.Post("/logout", h.logout)
			r.Post("/reset", h.reset)
		})
	})

	router.MethodNotAllowed(methodNotAllowed(router))

	return router
}
