// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-memo-sync/internal/app"
	"github.com/MKhiriev/go-memo-sync/internal/service"
)

// errorStatusMap maps the error taxonomy onto IPC status codes. The
// sentinels never wrap each other, so at most one entry matches.
var errorStatusMap = map[error]int{
	app.ErrValidation:        http.StatusBadRequest,
	app.ErrNotFound:          http.StatusNotFound,
	app.ErrConflict:          http.StatusConflict,
	app.ErrSyncInProgress:    http.StatusConflict,
	app.ErrOffline:           http.StatusServiceUnavailable,
	service.ErrSyncAbandoned: http.StatusServiceUnavailable,
	ErrSessionUnavailable:    http.StatusNotImplemented,
	app.ErrNetwork:           http.StatusBadGateway,
	app.ErrStorage:           http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	if statusFromError(err) == http.StatusInternalServerError {
		return app.MsgInternalError
	}
	return err.Error()
}
