// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-memo-sync/internal/app"
)

var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = fmt.Errorf("%w: %s", app.ErrValidation, app.MsgInvalidDataProvided)

	// ErrSessionUnavailable is returned by session routes when the handler
	// was built without a session controller.
	ErrSessionUnavailable = errors.New("session control is not available")
)
