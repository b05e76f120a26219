// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ConflictKind tells which sides of a conflict still hold a live memo.
type ConflictKind string

const (
	// ConflictEditEdit: both sides edited the memo.
	ConflictEditEdit ConflictKind = "edit_edit"
	// ConflictEditDelete: edited locally, deleted on the server.
	ConflictEditDelete ConflictKind = "edit_delete"
	// ConflictDeleteEdit: deleted locally, edited on the server.
	ConflictDeleteEdit ConflictKind = "delete_edit"
	// ConflictCreateCreate: created locally with an id the server already has.
	ConflictCreateCreate ConflictKind = "create_create"
)

// ConflictStatus is the lifecycle state of a conflict record.
type ConflictStatus string

const (
	ConflictUnresolved ConflictStatus = "unresolved"
	ConflictResolved   ConflictStatus = "resolved"
)

// Resolution picks the side that wins a conflict.
type Resolution string

const (
	ResolveLocal  Resolution = "local"
	ResolveRemote Resolution = "remote"
)

// Valid reports whether r is local or remote.
func (r Resolution) Valid() bool {
	return r == ResolveLocal || r == ResolveRemote
}

// ConflictRecord holds both versions of a memo that diverged while a local
// change was pending. A nil side means the memo is deleted on that side;
// Kind always agrees with which sides are nil.
type ConflictRecord struct {
	EntityID string       `json:"entity_id"`
	Kind     ConflictKind `json:"kind"`

	Local  *MemoSnapshot `json:"local,omitempty"`
	Remote *MemoSnapshot `json:"remote,omitempty"`

	// BaseVersion is the version the local change was made against.
	BaseVersion int64 `json:"base_version"`

	Status     ConflictStatus `json:"status"`
	DetectedAt time.Time      `json:"detected_at"`
}

// ResolveOutcome describes what resolving a conflict did.
type ResolveOutcome struct {
	EntityID   string     `json:"entity_id"`
	Resolution Resolution `json:"resolution"`

	// Memo is the cache record after resolution; nil when the memo was
	// removed from the cache.
	Memo *CachedMemo `json:"memo,omitempty"`

	// Requeued is the fresh operation queued by a local resolution.
	Requeued *SyncOperation `json:"requeued,omitempty"`

	// Discarded counts pending operations dropped by the resolution.
	Discarded int `json:"discarded"`
}
