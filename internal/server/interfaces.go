// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the IPC server.
type Server interface {
	// RunServer serves requests and blocks until ctx is done or a stop
	// signal arrives, then shuts down gracefully.
	RunServer(ctx context.Context) error

	// Addr is the address the listener is bound to.
	Addr() string

	// Shutdown stops accepting requests and waits for in-flight ones.
	Shutdown(ctx context.Context) error
}
