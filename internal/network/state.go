// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package network

import "time"

// State is the reachability of the memo server.
type State string

const (
	StateUnknown State = "unknown"
	StateOnline  State = "online"
	StateOffline State = "offline"
)

// Transition is delivered to subscribers on every state change.
type Transition struct {
	From State     `json:"from"`
	To   State     `json:"to"`
	At   time.Time `json:"at"`
}

// CameOnline reports a reconnect: offline to online. The first probe
// leaving StateUnknown is not a reconnect.
func (t Transition) CameOnline() bool {
	return t.From == StateOffline && t.To == StateOnline
}
