// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// CachedMemo is the local replica of a memo kept by the cache store.
//
// When Dirty is false the record mirrors the last known server state and
// LocalUpdatedAt is not after UpdatedAt. UI edits set Dirty and bump
// LocalUpdatedAt; a successful push or pull clears Dirty and refreshes
// UpdatedAt and SyncVersion.
type CachedMemo struct {
	// ID is the stable identity shared with the server. Memos created
	// offline get a client-generated UUID that the server keeps.
	ID string `json:"id"`

	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`

	// UpdatedAt is the server-assigned timestamp of the last successful sync.
	UpdatedAt time.Time `json:"updated_at"`

	// LocalUpdatedAt is the timestamp of the last local edit.
	LocalUpdatedAt time.Time `json:"local_updated_at"`

	// SyncVersion is the server revision this replica is based on.
	// Zero means the memo has never been acknowledged by the server.
	SyncVersion int64 `json:"sync_version"`

	// Dirty reports unsynced local changes.
	Dirty bool `json:"dirty"`

	// PendingDelete marks a memo deleted locally whose delete has not been
	// confirmed by the server yet.
	PendingDelete bool `json:"pending_delete"`
}

// Snapshot returns the content-bearing part of the memo.
func (m CachedMemo) Snapshot() MemoSnapshot {
	return MemoSnapshot{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		Tags:      slices.Clone(m.Tags),
		Version:   m.SyncVersion,
		UpdatedAt: m.LocalUpdatedAt,
	}
}

// Memo is the server representation returned by the remote memo API.
type Memo struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`

	// Deleted is set on tombstones returned by the change feed.
	Deleted bool `json:"deleted,omitempty"`
}

// ToCached converts a server memo into a clean cache record.
func (m Memo) ToCached() CachedMemo {
	return CachedMemo{
		ID:             m.ID,
		Title:          m.Title,
		Content:        m.Content,
		Tags:           slices.Clone(m.Tags),
		UpdatedAt:      m.UpdatedAt,
		LocalUpdatedAt: m.UpdatedAt,
		SyncVersion:    m.Version,
	}
}

// Snapshot returns the content-bearing part of the server memo, or nil
// for a tombstone.
func (m Memo) Snapshot() *MemoSnapshot {
	if m.Deleted {
		return nil
	}
	return &MemoSnapshot{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		Tags:      slices.Clone(m.Tags),
		Version:   m.Version,
		UpdatedAt: m.UpdatedAt,
	}
}

// MemoSnapshot is an immutable view of one side of a memo, used by
// conflict records.
type MemoSnapshot struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChangeSet is the response of the remote change feed.
type ChangeSet struct {
	// Memos holds every memo changed after the requested watermark,
	// including tombstones.
	Memos []Memo `json:"memos"`

	// ServerTime is the server clock at the moment the feed was read. It
	// becomes the next watermark.
	ServerTime time.Time `json:"server_time"`
}

// CacheStats is a read-only aggregate of the cache used for diagnostics
// and logout accounting.
type CacheStats struct {
	TotalMemos   int        `json:"total_memos"`
	TotalSize    int64      `json:"total_size"`
	LastSyncTime *time.Time `json:"last_sync_time,omitempty"`
}
