// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the sync core and
// the remote memo server.
//
// The primary abstraction is [ServerAdapter], which decouples the sync
// engine from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrNotFound] for 404). Every
// returned error also wraps one of the app taxonomy errors.
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-memo-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the memo
// server. Implementations are responsible for serialisation, bearer token
// handling and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every subsequent request.
	// An empty token clears it.
	SetToken(token string)

	// Token returns the bearer token currently stored, or "".
	Token() string

	// Subject returns the "sub" claim of the stored token, or "" when no
	// token is set or it cannot be parsed.
	Subject() string

	// CreateMemo creates a memo under the client-generated id. The server
	// keeps the id and returns the stored memo with its first version.
	CreateMemo(ctx context.Context, id string, payload models.CreatePayload) (models.Memo, error)

	// UpdateMemo replaces the memo content if the server version still
	// equals baseVersion. Returns [ErrConflict] (wrapped) otherwise.
	UpdateMemo(ctx context.Context, id string, baseVersion int64, payload models.UpdatePayload) (models.Memo, error)

	// DeleteMemo deletes the memo if the server version still equals
	// baseVersion. Returns [ErrNotFound] (wrapped) when it is already gone.
	DeleteMemo(ctx context.Context, id string, baseVersion int64) error

	// GetMemo fetches the current server copy of one memo. Returns
	// [ErrNotFound] (wrapped) when the memo does not exist.
	GetMemo(ctx context.Context, id string) (models.Memo, error)

	// ListChanges returns every memo changed after since, tombstones
	// included, and the server clock at read time. A nil since requests a
	// full pull.
	ListChanges(ctx context.Context, since *time.Time) (models.ChangeSet, error)
}
