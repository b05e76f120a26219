// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-memo-sync/internal/logger"
	"github.com/MKhiriev/go-memo-sync/internal/service"
	"github.com/MKhiriev/go-memo-sync/internal/utils"
	"github.com/MKhiriev/go-memo-sync/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listMemos(w http.ResponseWriter, r *http.Request) {
	memos, err := h.cache.GetAllCachedMemos(r.Context())
	if err != nil {
		h.fail(w, r, "Handler.listMemos", err)
		return
	}
	if memos == nil {
		memos = []models.CachedMemo{}
	}

	utils.WriteJSON(w, memos, http.StatusOK)
}

func (h *Handler) getMemo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	memo, err := h.cache.GetCachedMemo(r.Context(), id)
	if err != nil {
		h.fail(w, r, "Handler.getMemo", err)
		return
	}
	if memo == nil {
		http.Error(w, service.ErrMemoNotFound.Error(), http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, memo, http.StatusOK)
}

func (h *Handler) createMemo(w http.ResponseWriter, r *http.Request) {
	var payload models.CreatePayload
	if !decodeBody(w, r, &payload) {
		return
	}

	memo, err := h.services.Memos.Create(r.Context(), payload)
	if err != nil {
		h.fail(w, r, "Handler.createMemo", err)
		return
	}

	utils.WriteJSON(w, memo, http.StatusCreated)
}

func (h *Handler) updateMemo(w http.ResponseWriter, r *http.Request) {
	var payload models.UpdatePayload
	if !decodeBody(w, r, &payload) {
		return
	}

	memo, err := h.services.Memos.Update(r.Context(), chi.URLParam(r, "id"), payload)
	if err != nil {
		h.fail(w, r, "Handler.updateMemo", err)
		return
	}

	utils.WriteJSON(w, memo, http.StatusOK)
}

func (h *Handler) deleteMemo(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Memos.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, "Handler.deleteMemo", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getCacheStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.cache.GetStats(r.Context())
	if err != nil {
		h.fail(w, r, "Handler.getCacheStats", err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

// decodeBody decodes the JSON body into v and answers 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "decodeBody").Msg("invalid JSON was passed")
		http.Error(w, fmt.Errorf("%w: %w", ErrInvalidJSON, err).Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// fail logs err and answers with the status mapped from it.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	}

	http.Error(w, messageFromError(err), status)
}
