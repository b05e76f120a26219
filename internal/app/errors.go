// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-memo-sync/models"
)

// Error taxonomy of the sync core.
var (
	// ErrStorage: local persistence unavailable or corrupt. The operation
	// was aborted and nothing was partially written.
	ErrStorage = errors.New("storage error")

	// ErrNetwork: transient transport failure (timeout, DNS, refused
	// connection, 5xx). Pending operations are kept and retried.
	ErrNetwork = errors.New("network error")

	// ErrValidation: the payload was rejected and can never succeed.
	// Pending operations failing with it are dropped and reported.
	ErrValidation = errors.New("validation error")

	// ErrConflict: divergence that needs a caller decision. Reported via
	// SyncResult.Conflicts, never returned from Sync itself.
	ErrConflict = errors.New("conflict")

	// ErrNotFound: the entity or conflict does not exist.
	ErrNotFound = errors.New("not found")

	// ErrOffline: the network monitor reports the client offline.
	ErrOffline = errors.New(MsgOffline)

	// ErrSyncInProgress: an exclusive action raced an in-flight sync pass.
	ErrSyncInProgress = errors.New(MsgSyncInProgress)
)

// Classify maps an error to the failure class the sync engine acts on.
// Context deadline errors are transient; anything unrecognised is treated
// as transient as well, so an operation is never dropped by accident.
func Classify(err error) models.FailureClass {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrOffline):
		return models.FailureOffline
	case errors.Is(err, ErrStorage):
		return models.FailureStorage
	case errors.Is(err, ErrValidation):
		return models.FailurePermanent
	case errors.Is(err, ErrNetwork),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return models.FailureTransient
	}
	return models.FailureTransient
}
