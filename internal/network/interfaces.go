// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package network tracks whether the memo server is reachable.
//
// The [Monitor] combines two sources: OS-level connectivity events
// delivered by the host through ReportOSState, and an active HTTP probe
// against the server health endpoint. Consumers read the current state
// without blocking and subscribe to transitions.
package network

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/network_mock.go -package=mock

// Monitor reports and tracks server reachability.
type Monitor interface {
	// IsOnline reports the last known state without blocking. The initial
	// Unknown state reports false.
	IsOnline() bool

	// State returns the last known state.
	State() State

	// CheckNetworkStatus probes the server, updates the state and returns
	// the result. The probe is bounded by the configured probe timeout.
	CheckNetworkStatus(ctx context.Context) bool

	// ReportOSState records an OS connectivity event. Going offline is
	// applied immediately; going online starts a background probe.
	ReportOSState(online bool)

	// Subscribe registers fn for every state transition and returns a
	// function that removes it. fn must not call ReportOSState or
	// CheckNetworkStatus.
	Subscribe(fn func(Transition)) (unsubscribe func())

	// Run probes every interval until ctx is done.
	Run(ctx context.Context, interval time.Duration)
}
