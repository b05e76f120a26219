// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-memo-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CacheRepository is the keyed record store of cached memos.
type CacheRepository interface {
	// GetCachedMemo returns the memo or nil, nil when it is absent.
	GetCachedMemo(ctx context.Context, id string) (*models.CachedMemo, error)
	// GetAllCachedMemos returns every cached memo, tombstones included, in
	// no particular order.
	GetAllCachedMemos(ctx context.Context) ([]models.CachedMemo, error)
	// CacheMemo inserts or replaces the memo with the same id.
	CacheMemo(ctx context.Context, memo models.CachedMemo) error
	// DeleteCachedMemo removes the memo; a missing id is not an error.
	DeleteCachedMemo(ctx context.Context, id string) error
}

// OperationLog is the durable queue of local mutations not yet
// acknowledged by the server.
type OperationLog interface {
	// Append persists op at the tail of the log.
	Append(ctx context.Context, op models.SyncOperation) error
	// List returns all operations ordered by CreatedAt, then insertion.
	List(ctx context.Context) ([]models.SyncOperation, error)
	// ListForEntity returns the operations of one memo in log order.
	ListForEntity(ctx context.Context, entityID string) ([]models.SyncOperation, error)
	// Update stores the delivery state, attempts, last error and base
	// version of op.
	Update(ctx context.Context, op models.SyncOperation) error
	// Remove deletes one operation; a missing id is not an error.
	Remove(ctx context.Context, id string) error
	// RemoveForEntity deletes every operation of a memo and returns how
	// many were removed.
	RemoveForEntity(ctx context.Context, entityID string) (int, error)
	// Rebase sets the base version of every queued operation of a memo.
	Rebase(ctx context.Context, entityID string, baseVersion int64) error
	// Count returns the number of queued operations.
	Count(ctx context.Context) (int, error)
}

// MetaRepository stores sync bookkeeping.
type MetaRepository interface {
	// LastSyncTime returns the watermark of the last successful pass, or
	// nil if the cache has never been synced.
	LastSyncTime(ctx context.Context) (*time.Time, error)
	// SetLastSyncTime advances the watermark.
	SetLastSyncTime(ctx context.Context, t time.Time) error
}

// Tx exposes transaction-bound repositories to [LocalStorage.Atomically].
// They must not be used after the callback returns.
type Tx interface {
	Cache() CacheRepository
	Operations() OperationLog
	Meta() MetaRepository
}

// LocalStorage is the on-disk replica: cached memos, the pending operation
// log and sync metadata in one SQLite database.
type LocalStorage interface {
	CacheRepository
	MetaRepository

	// Operations returns the pending operation log.
	Operations() OperationLog

	// Atomically runs fn in one transaction. Any error returned by fn
	// rolls back every change made through tx.
	Atomically(ctx context.Context, fn func(tx Tx) error) error

	// ClearAll wipes memos, operations and metadata in one transaction.
	ClearAll(ctx context.Context) error
	// GetStats returns cache aggregates for diagnostics.
	GetStats(ctx context.Context) (models.CacheStats, error)

	// IsInitialized reports whether the database is open.
	IsInitialized() bool
	// Open opens (creating if needed) and migrates the database.
	Open(ctx context.Context) error
	// Close releases the handle and keeps the file.
	Close() error
	// Destroy closes and removes the database files.
	Destroy() error
}
