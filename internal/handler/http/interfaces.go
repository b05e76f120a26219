// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "context"

// Session tears down the client session. Implemented by the composition
// root, which owns the lifecycle of the cache and the background workers.
type Session interface {
	// Logout waits for the sync pass in flight, then wipes the cache,
	// the pending operations and the unresolved conflicts.
	Logout(ctx context.Context) error

	// Reset removes the cache database and opens a fresh one.
	Reset(ctx context.Context) error
}
