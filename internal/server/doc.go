// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the loopback IPC server of the memo sync client.
//
// It binds the listener eagerly so a taken port fails at startup, serves
// until the parent context ends or a stop signal arrives, and then shuts
// the server down gracefully.
package server
