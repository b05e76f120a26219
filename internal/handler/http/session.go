// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
)

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.sessionAction(w, r, "Handler.logout", func(s Session, ctx context.Context) error { return s.Logout(ctx) })
}

func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	h.sessionAction(w, r, "Handler.reset", func(s Session, ctx context.Context) error { return s.Reset(ctx) })
}

func (h *Handler) sessionAction(w http.ResponseWriter, r *http.Request, fn string, action func(Session, context.Context) error) {
	if h.session == nil {
		h.fail(w, r, fn, ErrSessionUnavailable)
		return
	}
	if err := action(h.session, r.Context()); err != nil {
		h.fail(w, r, fn, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
