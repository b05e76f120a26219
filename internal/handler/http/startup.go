// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-memo-sync/internal/utils"
)

func (h *Handler) loadStartup(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.Startup.Load(r.Context())
	if err != nil {
		h.fail(w, r, "Handler.loadStartup", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) getStartupState(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.Startup.GetState(), http.StatusOK)
}
