// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-memo-sync/internal/adapter"
	"github.com/MKhiriev/go-memo-sync/internal/app"
	"github.com/MKhiriev/go-memo-sync/models"
)

// pushOutcome is what the engine does with an operation after the server
// answered it.
type pushOutcome int

const (
	pushAcked pushOutcome = iota
	pushConflict
	pushTransient
	pushPermanent
)

// mapPushError translates the adapter's answer to a push into the engine
// action. A 404 on delete means the delete already happened; a 409, or a
// 404 on update, means the server copy must be fetched and compared.
func mapPushError(kind models.OperationKind, err error) pushOutcome {
	if err == nil {
		return pushAcked
	}

	switch {
	case errors.Is(err, adapter.ErrNotFound):
		switch kind {
		case models.OperationDelete:
			return pushAcked
		case models.OperationUpdate:
			return pushConflict
		}
		return pushPermanent
	case errors.Is(err, adapter.ErrConflict):
		return pushConflict
	}

	if app.Classify(err) == models.FailurePermanent {
		return pushPermanent
	}
	return pushTransient
}

// syncError builds the result entry of a failed operation.
func syncError(op models.SyncOperation, class models.FailureClass, err error) models.SyncError {
	return models.SyncError{
		OperationID: op.ID,
		EntityID:    op.EntityID,
		Kind:        op.Kind,
		Class:       class,
		Message:     err.Error(),
	}
}

// passError builds the result entry of a failure not tied to one operation.
func passError(err error) models.SyncError {
	return models.SyncError{Class: app.Classify(err), Message: err.Error()}
}
