// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-memo-sync/internal/adapter"
	"github.com/MKhiriev/go-memo-sync/internal/config"
	"github.com/MKhiriev/go-memo-sync/internal/logger"
	"github.com/MKhiriev/go-memo-sync/internal/network"
	"github.com/MKhiriev/go-memo-sync/internal/store"
	"github.com/MKhiriev/go-memo-sync/internal/utils"
)

// ClientServices groups the services of one client session. They share a
// single per-memo lock.
type ClientServices struct {
	Resolver    ConflictResolver
	SyncService SyncService
	Startup     StartupLoader
	Memos       MemoService
	SyncJob     ClientSyncJob
}

func NewClientServices(
	cfg *config.ClientConfig,
	localStore store.LocalStorage,
	serverAdapter adapter.ServerAdapter,
	monitor network.Monitor,
	logger *logger.Logger,
) *ClientServices {
	locks := utils.NewKeyedMutex()

	resolver := NewConflictResolver(localStore, locks, logger)
	syncSvc := NewClientSyncService(localStore, serverAdapter, monitor, resolver, locks, cfg.Adapter.RequestTimeout, logger)

	return &ClientServices{
		Resolver:    resolver,
		SyncService: syncSvc,
		Startup:     NewStartupLoader(localStore, monitor, syncSvc, cfg.Workers.StaleThreshold, cfg.Workers.AutoSync, logger),
		Memos:       NewMemoService(localStore, locks, logger),
		SyncJob:     NewClientSyncJob(syncSvc, monitor, logger),
	}
}
