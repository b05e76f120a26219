// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the memo sync core on top of the local store,
// the server adapter and the network monitor: the sync engine, the conflict
// resolver, the startup loader, the local editor and the background sync
// job.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-memo-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/service_mock.go -package=mock

// ConflictResolver detects divergence between pending local changes and the
// server copy of a memo, keeps the unresolved records of the session and
// applies the caller's resolution.
type ConflictResolver interface {
	// Detect reports a conflict when the remote memo advanced past the base
	// version of the first pending operation and its content differs from
	// what the pending operations would produce. remote is nil when the
	// memo no longer exists on the server.
	Detect(ops []models.SyncOperation, cached *models.CachedMemo, remote *models.Memo) (models.ConflictRecord, bool)

	// Record stores or refreshes an unresolved conflict.
	Record(rec models.ConflictRecord)

	// Forget drops the conflict of entityID without resolving it, used when
	// the sides converged on their own.
	Forget(entityID string)

	// HasConflict reports whether entityID has an unresolved conflict.
	HasConflict(entityID string) bool

	// Conflicts lists the unresolved conflicts ordered by detection time.
	Conflicts() []models.ConflictRecord

	// ResolveConflict applies resolution to the conflict of entityID in one
	// transaction. Returns [ErrConflictNotFound] when there is none.
	ResolveConflict(ctx context.Context, entityID string, resolution models.Resolution) (models.ResolveOutcome, error)

	// Reset forgets every conflict.
	Reset()
}

// SyncService runs reconciliation passes and owns the pending operation log.
type SyncService interface {
	// Sync runs one reconciliation pass, or joins the pass already in flight
	// and returns its result. Offline, it returns at once with
	// Success=false and makes no remote call.
	Sync(ctx context.Context) (models.SyncResult, error)

	// GetStatus recomputes the sync status.
	GetStatus(ctx context.Context) (models.SyncStatus, error)

	// AddPendingOperation validates op, assigns its id and creation time
	// when absent and persists it before returning.
	AddPendingOperation(ctx context.Context, op models.SyncOperation) (models.SyncOperation, error)

	// GetPendingOperations returns the log in delivery order.
	GetPendingOperations(ctx context.Context) ([]models.SyncOperation, error)

	// Quiesce waits for the pass in flight, then runs fn while no pass can
	// start.
	Quiesce(ctx context.Context, fn func(ctx context.Context) error) error
}

// StartupLoader serves the cache on launch and decides whether a sync pass
// should start automatically.
type StartupLoader interface {
	// Load returns the displayable cached memos, newest local edit first,
	// and the auto-sync decision. It never touches the network.
	Load(ctx context.Context) (models.LoadResult, error)

	// ManualSync runs a pass regardless of staleness and returns its
	// result unchanged.
	ManualSync(ctx context.Context) (models.SyncResult, error)

	// GetState returns a snapshot of the last load and manual sync.
	GetState() models.StartupState
}

// MemoService applies local edits optimistically: the cache write and the
// matching pending operation are stored in one transaction.
type MemoService interface {
	// Create stores a new memo under a client-generated id.
	Create(ctx context.Context, payload models.CreatePayload) (models.CachedMemo, error)

	// Update replaces the content of a cached memo.
	Update(ctx context.Context, id string, payload models.UpdatePayload) (models.CachedMemo, error)

	// Delete hides the memo and queues its deletion. A memo the server
	// has never seen is removed locally with its queued operations.
	Delete(ctx context.Context, id string) error
}

// ClientSyncJob runs sync passes in the background: on a ticker, when the
// network comes back and on demand.
type ClientSyncJob interface {
	// Start launches the background goroutine. If interval is zero or
	// negative it defaults to 5 minutes. Any previously running job is
	// stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// TriggerNow requests a pass without waiting for it. Requests made
	// while one is already pending are merged.
	TriggerNow()

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
