// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-memo-sync/internal/app"
)

// Sentinel errors returned by the local storage. Every error leaving the
// package also matches [app.ErrStorage]; callers should use [errors.Is].
var (
	// ErrNotInitialized is returned by writes issued before Open or after
	// Close.
	ErrNotInitialized = errors.New("local storage is not initialized")

	// ErrOperationNotFound is returned when an update targets an operation
	// that is no longer in the log.
	ErrOperationNotFound = errors.New("pending operation was not found")

	// ErrInvalidOperation is returned when an operation cannot be encoded
	// for storage (unknown kind or mismatched payload).
	ErrInvalidOperation = errors.New("invalid pending operation")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing fails. The
	// transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrEncodingRow is returned when a column value cannot be encoded or
	// decoded (tags, payloads, timestamps).
	ErrEncodingRow = errors.New("failed to encode row")
)

// storageError wraps err into the application storage taxonomy, tagging it
// with the failing step and its low-level sentinel.
func storageError(op string, kind, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %s: %w", app.ErrStorage, op, kind)
	}
	return fmt.Errorf("%w: %s: %w: %w", app.ErrStorage, op, kind, err)
}
