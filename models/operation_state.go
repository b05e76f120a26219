// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// OperationState is the delivery state of a queued operation.
//
//	queued ──send──▶ in_flight ──ack──────────────▶ acked
//	                    │
//	                    ├──transient──▶ failed_transient ──requeue──▶ queued
//	                    └──permanent──▶ failed_permanent ──drop─────▶ dropped
//
// Only queued and in_flight operations are persisted in the log.
type OperationState string

const (
	StateQueued          OperationState = "queued"
	StateInFlight        OperationState = "in_flight"
	StateAcked           OperationState = "acked"
	StateFailedTransient OperationState = "failed_transient"
	StateFailedPermanent OperationState = "failed_permanent"
	StateDropped         OperationState = "dropped"
)

// OperationEvent drives [OperationState] transitions.
type OperationEvent string

const (
	EventSend             OperationEvent = "send"
	EventAck              OperationEvent = "ack"
	EventTransientFailure OperationEvent = "transient_failure"
	EventPermanentFailure OperationEvent = "permanent_failure"
	EventRequeue          OperationEvent = "requeue"
	EventDrop             OperationEvent = "drop"
)

var operationTransitions = map[OperationState]map[OperationEvent]OperationState{
	StateQueued: {
		EventSend: StateInFlight,
	},
	StateInFlight: {
		EventAck:              StateAcked,
		EventTransientFailure: StateFailedTransient,
		EventPermanentFailure: StateFailedPermanent,
		// crash recovery: an in-flight row found at startup is retried
		EventRequeue: StateQueued,
	},
	StateFailedTransient: {
		EventRequeue: StateQueued,
	},
	StateFailedPermanent: {
		EventDrop: StateDropped,
	},
}

// Next returns the state reached from s on event e, or an error when the
// transition is not allowed.
func (s OperationState) Next(e OperationEvent) (OperationState, error) {
	if next, ok := operationTransitions[s][e]; ok {
		return next, nil
	}
	return s, fmt.Errorf("illegal operation transition %s --%s-->", s, e)
}

// Terminal reports whether no further transition is possible.
func (s OperationState) Terminal() bool {
	return s == StateAcked || s == StateDropped
}

// Persisted reports whether an operation in state s stays in the log.
func (s OperationState) Persisted() bool {
	return s == StateQueued || s == StateInFlight
}

// Apply moves the operation along the state machine. A transient failure
// increments Attempts and requeues the operation in one step.
func (o *SyncOperation) Apply(e OperationEvent, cause error) error {
	next, err := o.State.Next(e)
	if err != nil {
		return err
	}
	o.State = next

	switch next {
	case StateFailedTransient:
		o.Attempts++
		if cause != nil {
			o.LastError = cause.Error()
		}
		o.State, _ = o.State.Next(EventRequeue)
	case StateFailedPermanent:
		if cause != nil {
			o.LastError = cause.Error()
		}
		o.State, _ = o.State.Next(EventDrop)
	}
	return nil
}
