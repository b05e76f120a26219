// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-memo-sync/internal/adapter"
	"github.com/MKhiriev/go-memo-sync/internal/config"
	"github.com/MKhiriev/go-memo-sync/internal/handler"
	"github.com/MKhiriev/go-memo-sync/internal/handler/http"
	"github.com/MKhiriev/go-memo-sync/internal/logger"
	"github.com/MKhiriev/go-memo-sync/internal/network"
	"github.com/MKhiriev/go-memo-sync/internal/server"
	"github.com/MKhiriev/go-memo-sync/internal/service"
	"github.com/MKhiriev/go-memo-sync/internal/store"
	"github.com/MKhiriev/go-memo-sync/internal/workers"
	"github.com/MKhiriev/go-memo-sync/models"
)

type App struct {
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo

	store    store.LocalStorage
	adapter  adapter.ServerAdapter
	monitor  network.Monitor
	services *service.ClientServices
	workers  *workers.Workers

	mu      sync.Mutex
	started bool

	logger *logger.Logger
}

var _ Client = (*App)(nil)
var _ http.Session = (*App)(nil)

func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	localStore := store.NewLocalStorage(cfg.Storage.DSN, logger)
	monitor := network.NewMonitor(cfg.Network, logger)
	services := service.NewClientServices(cfg, localStore, serverAdapter, monitor, logger)

	return &App{
		cfg:       cfg,
		buildInfo: buildInfo,
		store:     localStore,
		adapter:   serverAdapter,
		monitor:   monitor,
		services:  services,
		workers:   workers.NewClientWorkers(*cfg, monitor, services.SyncJob, logger),
		logger:    logger,
	}, nil
}

// Services exposes the client services.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// Init opens the cache, serves it through the startup loader and starts
// the background workers. A pass is requested at once when the loader
// asks for one.
func (a *App) Init(ctx context.Context) (models.LoadResult, error) {
	if err := a.store.Open(ctx); err != nil {
		return models.LoadResult{}, fmt.Errorf("open local storage: %w", err)
	}

	loaded, err := a.services.Startup.Load(ctx)
	if err != nil {
		return models.LoadResult{}, fmt.Errorf("load cache: %w", err)
	}
	a.logger.Info().
		Int("memos", len(loaded.Memos)).
		Bool("auto_sync", loaded.ShouldAutoSync).
		Str("reason", string(loaded.Reason)).
		Msg("cache loaded")

	a.mu.Lock()
	if !a.started {
		a.workers.Run(ctx)
		a.started = true
	}
	a.mu.Unlock()

	if loaded.ShouldAutoSync {
		a.services.SyncJob.TriggerNow()
	}
	return loaded, nil
}

// Run initialises the app, serves the IPC surface until ctx is done or a
// stop signal arrives, then closes the app.
func (a *App) Run(ctx context.Context) error {
	if _, err := a.Init(ctx); err != nil {
		return errors.Join(err, a.Close())
	}

	handlers, err := handler.NewHandlers(http.Deps{
		Services:  a.services,
		Cache:     a.store,
		Monitor:   a.monitor,
		Session:   a,
		BuildInfo: a.buildInfo,
	}, a.cfg.IPC, a.logger)
	if err != nil {
		return errors.Join(err, a.Close())
	}

	srv, err := server.NewServer(handlers, a.cfg.IPC, a.logger)
	if err != nil {
		return errors.Join(err, a.Close())
	}

	return errors.Join(srv.RunServer(ctx), a.Close())
}

// Close stops the workers and closes the cache.
func (a *App) Close() error {
	a.mu.Lock()
	if a.started {
		a.workers.Stop()
		a.started = false
	}
	a.mu.Unlock()

	return a.store.Close()
}

// Logout waits for the pass in flight, then wipes the cache, the pending
// operations and the unresolved conflicts and forgets the bearer token.
func (a *App) Logout(ctx context.Context) error {
	err := a.services.SyncService.Quiesce(ctx, func(ctx context.Context) error {
		if err := a.store.ClearAll(ctx); err != nil {
			return err
		}
		a.services.Resolver.Reset()
		a.adapter.SetToken("")
		return nil
	})
	if err != nil {
		a.logger.Err(err).Str("func", "App.Logout").Msg("logout failed")
		return err
	}

	a.logger.Info().Msg("logged out, local data cleared")
	return nil
}

// Reset removes the cache database and opens an empty one. The bearer
// token is kept.
func (a *App) Reset(ctx context.Context) error {
	err := a.services.SyncService.Quiesce(ctx, func(ctx context.Context) error {
		if err := a.store.Destroy(); err != nil {
			return err
		}
		a.services.Resolver.Reset()
		return a.store.Open(ctx)
	})
	if err != nil {
		a.logger.Err(err).Str("func", "App.Reset").Msg("reset failed")
		return err
	}

	a.logger.Info().Msg("local storage reset")
	return nil
}
