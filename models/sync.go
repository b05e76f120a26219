// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// FailureClass groups sync errors by how the engine treats them.
type FailureClass string

const (
	// FailureTransient is retried on the next pass; the operation stays queued.
	FailureTransient FailureClass = "transient"
	// FailurePermanent can never succeed; the operation is dropped.
	FailurePermanent FailureClass = "permanent"
	// FailureStorage means the local store rejected a write.
	FailureStorage FailureClass = "storage"
	// FailureOffline is reported when a pass is refused while offline.
	FailureOffline FailureClass = "offline"
)

// SyncError is one failure reported by a reconciliation pass.
type SyncError struct {
	OperationID string        `json:"operation_id,omitempty"`
	EntityID    string        `json:"entity_id,omitempty"`
	Kind        OperationKind `json:"kind,omitempty"`
	Class       FailureClass  `json:"class"`
	Message     string        `json:"message"`
}

// SyncResult summarises one reconciliation pass.
type SyncResult struct {
	// Success is false when the pass was refused (offline) or hit a
	// transport or storage failure. Conflicts and permanently rejected
	// operations do not clear it.
	Success bool `json:"success"`

	// Synced counts acknowledged pushes plus remote changes applied locally.
	Synced int `json:"synced"`

	// Conflicts lists conflicts detected or refreshed during this pass.
	Conflicts []ConflictRecord `json:"conflicts"`

	Errors []SyncError `json:"errors"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// SyncStatus is a snapshot recomputed on every request.
type SyncStatus struct {
	IsOnline          bool             `json:"is_online"`
	PendingOperations int              `json:"pending_operations"`
	LastSyncTime      *time.Time       `json:"last_sync_time,omitempty"`
	Conflicts         []ConflictRecord `json:"conflicts"`
	InProgress        bool             `json:"in_progress"`
}
