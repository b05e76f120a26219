// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-memo-sync/internal/logger"
	"github.com/MKhiriev/go-memo-sync/internal/network"
	"github.com/MKhiriev/go-memo-sync/internal/utils"
)

const (
	TriggerInterval  = "interval"
	TriggerReconnect = "reconnect"
	TriggerManual    = "manual"

	defaultSyncInterval = 5 * time.Minute
)

type clientSyncJob struct {
	syncService SyncService
	monitor     network.Monitor
	logger      *logger.Logger

	trigger chan string

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a job that calls syncService.Sync on a ticker,
// whenever monitor reports the network came back and on TriggerNow. The
// job is idle until Start is called.
func NewClientSyncJob(syncService SyncService, monitor network.Monitor, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{
		syncService: syncService,
		monitor:     monitor,
		logger:      logger,
		trigger:     make(chan string, 1),
	}
}

func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	unsubscribe := j.monitor.Subscribe(func(t network.Transition) {
		if t.CameOnline() {
			j.request(TriggerReconnect)
		}
	})

	go func() {
		defer j.wg.Done()
		defer unsubscribe()

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.run(jobCtx, TriggerInterval)
			case trigger := <-j.trigger:
				j.run(jobCtx, trigger)
			}
		}
	}()
}

func (j *clientSyncJob) TriggerNow() {
	j.request(TriggerManual)
}

func (j *clientSyncJob) request(trigger string) {
	select {
	case j.trigger <- trigger:
	default:
	}
}

func (j *clientSyncJob) run(ctx context.Context, trigger string) {
	if !j.monitor.IsOnline() {
		j.logger.Debug().Str("func", "clientSyncJob.run").Str("trigger", trigger).Msg("offline, sync skipped")
		return
	}

	result, err := j.syncService.Sync(utils.WithSyncTrigger(ctx, trigger))
	if err != nil {
		j.logger.Err(err).Str("func", "clientSyncJob.run").Str("trigger", trigger).Msg("sync pass failed")
		return
	}
	if !result.Success {
		j.logger.Warn().
			Str("func", "clientSyncJob.run").
			Str("trigger", trigger).
			Int("errors", len(result.Errors)).
			Msg("sync pass finished with failures")
	}
}

// Stop cancels the background goroutine and blocks until it has exited.
// Safe to call when the job is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
