// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-memo-sync/internal/config"
	"github.com/MKhiriev/go-memo-sync/internal/handler/http"
	"github.com/MKhiriev/go-memo-sync/internal/logger"
)

type Handlers struct {
	IPC *http.Handler
}

// NewHandlers builds the transport handlers enabled by cfg. The client only
// serves the loopback IPC surface, so an empty address is a misconfiguration.
func NewHandlers(deps http.Deps, cfg config.ClientIPC, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Address == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{IPC: http.NewHandler(deps, logger)}, nil
}
