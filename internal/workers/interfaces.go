// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background loops of the memo sync client: the
// connectivity poller and the periodic sync job.
package workers

import "context"

// Worker is a background loop with an explicit lifecycle.
type Worker interface {
	// Start launches the loop and returns immediately. The loop ends when
	// ctx is done or Stop is called.
	Start(ctx context.Context)

	// Stop ends the loop and blocks until it has exited.
	Stop()
}
