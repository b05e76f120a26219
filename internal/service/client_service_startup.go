// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-memo-sync/internal/logger"
	"github.com/MKhiriev/go-memo-sync/internal/network"
	"github.com/MKhiriev/go-memo-sync/internal/store"
	"github.com/MKhiriev/go-memo-sync/models"
)

type startupLoader struct {
	localStore store.LocalStorage
	monitor    network.Monitor
	sync       SyncService

	staleThreshold time.Duration
	autoSync       bool

	mu    sync.RWMutex
	state models.StartupState

	now    func() time.Time
	logger *logger.Logger
}

// NewStartupLoader creates the startup loader. With autoSync false the
// decision is always "disabled"; ManualSync still works.
func NewStartupLoader(
	localStore store.LocalStorage,
	monitor network.Monitor,
	sync SyncService,
	staleThreshold time.Duration,
	autoSync bool,
	logger *logger.Logger,
) StartupLoader {
	return &startupLoader{
		localStore:     localStore,
		monitor:        monitor,
		sync:           sync,
		staleThreshold: staleThreshold,
		autoSync:       autoSync,
		now:            time.Now,
		logger:         logger,
	}
}

func (l *startupLoader) Load(ctx context.Context) (models.LoadResult, error) {
	result := models.LoadResult{Memos: []models.CachedMemo{}}

	if !l.localStore.IsInitialized() {
		result.Reason = models.ReasonNotInitialized
		l.remember(result)
		return result, nil
	}

	memos, err := l.localStore.GetAllCachedMemos(ctx)
	if err != nil {
		l.logger.Err(err).Str("func", "startupLoader.Load").Msg("error reading cached memos")
		return models.LoadResult{}, fmt.Errorf("load cached memos: %w", err)
	}
	for _, m := range memos {
		if m.PendingDelete {
			continue
		}
		result.Memos = append(result.Memos, m)
	}
	sort.SliceStable(result.Memos, func(i, j int) bool {
		return result.Memos[i].LocalUpdatedAt.After(result.Memos[j].LocalUpdatedAt)
	})

	result.ShouldAutoSync, result.Reason, err = l.decide(ctx)
	if err != nil {
		return models.LoadResult{}, err
	}
	l.remember(result)

	l.logger.Info().
		Str("func", "startupLoader.Load").
		Int("memos", len(result.Memos)).
		Bool("auto_sync", result.ShouldAutoSync).
		Str("reason", string(result.Reason)).
		Msg("cache loaded")
	return result, nil
}

func (l *startupLoader) decide(ctx context.Context) (bool, models.AutoSyncReason, error) {
	if !l.autoSync {
		return false, models.ReasonDisabled, nil
	}
	online := l.monitor.IsOnline()
	if !online && l.monitor.State() == network.StateUnknown {
		// no probe has run yet at launch
		online = l.monitor.CheckNetworkStatus(ctx)
	}
	if !online {
		return false, models.ReasonOffline, nil
	}

	pending, err := l.localStore.Operations().Count(ctx)
	if err != nil {
		return false, "", fmt.Errorf("count pending operations: %w", err)
	}
	if pending > 0 {
		return true, models.ReasonPendingOperations, nil
	}

	last, err := l.localStore.LastSyncTime(ctx)
	if err != nil {
		return false, "", fmt.Errorf("read watermark: %w", err)
	}
	switch {
	case last == nil:
		return true, models.ReasonNeverSynced, nil
	case l.now().Sub(*last) > l.staleThreshold:
		return true, models.ReasonStale, nil
	}
	return false, models.ReasonFresh, nil
}

func (l *startupLoader) remember(result models.LoadResult) {
	now := l.now().UTC()

	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.Loaded = true
	l.state.LastLoadTime = &now
	l.state.ShouldAutoSync = result.ShouldAutoSync
	l.state.Reason = result.Reason
}

func (l *startupLoader) ManualSync(ctx context.Context) (models.SyncResult, error) {
	result, err := l.sync.Sync(ctx)

	l.mu.Lock()
	l.state.LastManualSync = &result
	l.mu.Unlock()

	return result, err
}

func (l *startupLoader) GetState() models.StartupState {
	l.mu.RLock()
	defer l.mu.RUnlock()

	state := l.state
	if state.LastLoadTime != nil {
		t := *state.LastLoadTime
		state.LastLoadTime = &t
	}
	if state.LastManualSync != nil {
		r := *state.LastManualSync
		state.LastManualSync = &r
	}
	return state
}
