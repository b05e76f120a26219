// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client is the composition root of the memo sync client.
//
// [App] owns the cache store, the server adapter, the network monitor, the
// services and the background workers, and runs the loopback IPC server
// that frontends talk to. [IPCClient] is the caller side of that surface,
// used by the command line.
package client
