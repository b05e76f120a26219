// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-memo-sync/internal/logger"
	"github.com/MKhiriev/go-memo-sync/internal/network"
	"github.com/MKhiriev/go-memo-sync/internal/service"
	"github.com/MKhiriev/go-memo-sync/internal/store"
	"github.com/MKhiriev/go-memo-sync/models"
)

// Deps are the collaborators served by the IPC surface.
type Deps struct {
	Services  *service.ClientServices
	Cache     store.LocalStorage
	Monitor   network.Monitor
	Session   Session
	BuildInfo models.AppBuildInfo
}

type Handler struct {
	services  *service.ClientServices
	cache     store.LocalStorage
	monitor   network.Monitor
	session   Session
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(deps Deps, logger *logger.Logger) *Handler {
	logger.Info().Msg("ipc handler created")
	return &Handler{
		services:  deps.Services,
		cache:     deps.Cache,
		monitor:   deps.Monitor,
		session:   deps.Session,
		buildInfo: deps.BuildInfo,
		logger:    logger,
	}
}
