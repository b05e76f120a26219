// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-memo-sync/internal/network"
	"github.com/MKhiriev/go-memo-sync/internal/utils"
)

type networkStateResponse struct {
	Online bool          `json:"online"`
	State  network.State `json:"state"`
}

type osStateRequest struct {
	Online *bool `json:"online"`
}

func (h *Handler) getNetworkState(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, networkStateResponse{Online: h.monitor.IsOnline(), State: h.monitor.State()}, http.StatusOK)
}

func (h *Handler) checkNetwork(w http.ResponseWriter, r *http.Request) {
	online := h.monitor.CheckNetworkStatus(r.Context())

	utils.WriteJSON(w, networkStateResponse{Online: online, State: h.monitor.State()}, http.StatusOK)
}

// reportOSState takes connectivity events forwarded by the host OS.
func (h *Handler) reportOSState(w http.ResponseWriter, r *http.Request) {
	var req osStateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Online == nil {
		http.Error(w, ErrInvalidJSON.Error()+": online is required", http.StatusBadRequest)
		return
	}

	h.monitor.ReportOSState(*req.Online)
	w.WriteHeader(http.StatusAccepted)
}
