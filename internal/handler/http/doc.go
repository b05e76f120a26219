// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the loopback IPC surface of the memo sync client.
//
// The host UI talks to the sync core over a small JSON API: cached memos
// and local edits, network state, sync passes and status, conflicts and
// their resolution, the startup decision and session teardown. Request
// tracing, access logging and response compression are handled here
// before requests reach the service layer.
package http
