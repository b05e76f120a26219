// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-memo-sync/internal/service"
	"github.com/MKhiriev/go-memo-sync/internal/utils"
	"github.com/MKhiriev/go-memo-sync/models"
)

type pendingOperationsResponse struct {
	Operations []models.SyncOperation `json:"operations"`
	Length     int                    `json:"length"`
}

// runSync runs a manual pass. Failures inside the pass are reported in the
// result body with 200.
func (h *Handler) runSync(w http.ResponseWriter, r *http.Request) {
	ctx := utils.WithSyncTrigger(r.Context(), service.TriggerManual)

	result, err := h.services.Startup.ManualSync(ctx)
	if err != nil {
		h.fail(w, r, "Handler.runSync", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) getSyncStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.SyncService.GetStatus(r.Context())
	if err != nil {
		h.fail(w, r, "Handler.getSyncStatus", err)
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

func (h *Handler) getPendingOperations(w http.ResponseWriter, r *http.Request) {
	ops, err := h.services.SyncService.GetPendingOperations(r.Context())
	if err != nil {
		h.fail(w, r, "Handler.getPendingOperations", err)
		return
	}
	if ops == nil {
		ops = []models.SyncOperation{}
	}

	utils.WriteJSON(w, pendingOperationsResponse{Operations: ops, Length: len(ops)}, http.StatusOK)
}

func (h *Handler) addPendingOperation(w http.ResponseWriter, r *http.Request) {
	var op models.SyncOperation
	if !decodeBody(w, r, &op) {
		return
	}

	stored, err := h.services.SyncService.AddPendingOperation(r.Context(), op)
	if err != nil {
		h.fail(w, r, "Handler.addPendingOperation", err)
		return
	}

	utils.WriteJSON(w, stored, http.StatusCreated)
}
