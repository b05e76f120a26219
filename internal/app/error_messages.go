// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the error taxonomy and the shared message strings of
// the memo sync core.
//
// Every layer converts its low-level failures (SQLite, HTTP, JSON) into one
// of the sentinel errors below at its own boundary, so callers never have
// to inspect driver or transport errors. Match them with [errors.Is].
//
// All Msg* constants are human-readable strings written into IPC response
// bodies and log entries.
package app

const (
	// MsgInvalidDataProvided is returned when a request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalError is returned for unexpected failures the caller
	// cannot resolve.
	MsgInternalError = "internal error"

	// MsgStorageUnavailable is returned when the local cache is not open
	// or a disk operation failed.
	MsgStorageUnavailable = "local storage unavailable"

	// MsgOffline is reported when a sync pass is refused because the
	// network monitor considers the client offline.
	MsgOffline = "client is offline, sync skipped"

	// MsgMemoNotFound is returned when a memo id is unknown to the cache.
	MsgMemoNotFound = "memo not found"

	// MsgConflictNotFound is returned when resolving an entity that has no
	// outstanding conflict.
	MsgConflictNotFound = "no outstanding conflict for entity"

	// MsgInvalidResolution is returned when a resolution is neither
	// "local" nor "remote".
	MsgInvalidResolution = "resolution must be \"local\" or \"remote\""

	// MsgSyncInProgress is returned when an exclusive action is attempted
	// while a reconciliation pass is running.
	MsgSyncInProgress = "sync already in progress"
)
