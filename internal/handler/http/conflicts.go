// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-memo-sync/internal/utils"
	"github.com/MKhiriev/go-memo-sync/models"
	"github.com/go-chi/chi/v5"
)

type resolveRequest struct {
	Resolution models.Resolution `json:"resolution"`
}

func (h *Handler) listConflicts(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.Resolver.Conflicts(), http.StatusOK)
}

func (h *Handler) resolveConflict(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if !decodeBody(w, r, &req) {
		return
	}

	outcome, err := h.services.Resolver.ResolveConflict(r.Context(), chi.URLParam(r, "id"), req.Resolution)
	if err != nil {
		h.fail(w, r, "Handler.resolveConflict", err)
		return
	}

	utils.WriteJSON(w, outcome, http.StatusOK)
}
