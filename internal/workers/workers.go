// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-memo-sync/internal/config"
	"github.com/MKhiriev/go-memo-sync/internal/logger"
	"github.com/MKhiriev/go-memo-sync/internal/network"
	"github.com/MKhiriev/go-memo-sync/internal/service"
	"golang.org/x/sync/errgroup"
)

const defaultPollInterval = 30 * time.Second

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewClientWorkers builds the connectivity poller and, unless auto sync is
// disabled, the sync job. The poller starts first so the job sees a fresh
// network state.
func NewClientWorkers(cfg config.ClientConfig, monitor network.Monitor, syncJob service.ClientSyncJob, logger *logger.Logger) *Workers {
	ws := []Worker{newMonitorWorker(monitor, cfg.Network.PollInterval, logger)}
	if cfg.Workers.AutoSync {
		ws = append(ws, newSyncJobWorker(syncJob, cfg.Workers.SyncInterval))
	}

	return &Workers{workers: ws, logger: logger}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
	w.logger.Info().Int("workers", len(w.workers)).Msg("background workers started")
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for _, worker := range slices.Backward(w.workers) {
		worker.Stop()
	}
	w.logger.Info().Msg("background workers stopped")
}

// monitorWorker polls the reachability probe on a fixed interval.
type monitorWorker struct {
	monitor  network.Monitor
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	group  *errgroup.Group
}

func newMonitorWorker(monitor network.Monitor, interval time.Duration, logger *logger.Logger) *monitorWorker {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &monitorWorker{monitor: monitor, interval: interval, logger: logger}
}

func (m *monitorWorker) Start(ctx context.Context) {
	m.Stop()

	m.mu.Lock()
	defer m.mu.Unlock()

	ctx, m.cancel = context.WithCancel(ctx)
	m.group, ctx = errgroup.WithContext(ctx)
	m.group.Go(func() error {
		m.monitor.Run(ctx, m.interval)
		return nil
	})
}

func (m *monitorWorker) Stop() {
	m.mu.Lock()
	cancel, group := m.cancel, m.group
	m.cancel, m.group = nil, nil
	m.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	_ = group.Wait()
}

// syncJobWorker adapts the sync job to the Worker lifecycle.
type syncJobWorker struct {
	job      service.ClientSyncJob
	interval time.Duration
}

func newSyncJobWorker(job service.ClientSyncJob, interval time.Duration) *syncJobWorker {
	return &syncJobWorker{job: job, interval: interval}
}

func (s *syncJobWorker) Start(ctx context.Context) { s.job.Start(ctx, s.interval) }
func (s *syncJobWorker) Stop()                     { s.job.Stop() }
