// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AutoSyncReason explains the startup loader's auto-sync decision.
type AutoSyncReason string

const (
	ReasonNotInitialized    AutoSyncReason = "not_initialized"
	ReasonOffline           AutoSyncReason = "offline"
	ReasonPendingOperations AutoSyncReason = "pending_operations"
	ReasonNeverSynced       AutoSyncReason = "never_synced"
	ReasonStale             AutoSyncReason = "stale"
	ReasonFresh             AutoSyncReason = "fresh"
	ReasonDisabled          AutoSyncReason = "disabled"
)

// LoadResult is returned by the startup loader.
type LoadResult struct {
	Memos          []CachedMemo   `json:"memos"`
	ShouldAutoSync bool           `json:"should_auto_sync"`
	Reason         AutoSyncReason `json:"reason"`
}

// StartupState is a read-only snapshot of the startup loader.
type StartupState struct {
	Loaded         bool           `json:"loaded"`
	LastLoadTime   *time.Time     `json:"last_load_time,omitempty"`
	ShouldAutoSync bool           `json:"should_auto_sync"`
	Reason         AutoSyncReason `json:"reason,omitempty"`
	LastManualSync *SyncResult    `json:"last_manual_sync,omitempty"`
}
