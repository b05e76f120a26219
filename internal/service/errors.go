// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-memo-sync/internal/app"
)

var (
	ErrMemoNotFound     = fmt.Errorf("%w: %s", app.ErrNotFound, app.MsgMemoNotFound)
	ErrConflictNotFound = fmt.Errorf("%w: %s", app.ErrNotFound, app.MsgConflictNotFound)

	// ErrRemoteVersionRegressed is recorded when the server answers a push
	// with 409 although its copy is not newer than the operation's base.
	ErrRemoteVersionRegressed = fmt.Errorf("%w: server reported a conflict without a newer version", app.ErrNetwork)

	ErrSyncAbandoned = errors.New("sync pass abandoned")
)
