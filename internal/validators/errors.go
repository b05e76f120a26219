// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-memo-sync/internal/app"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidOperationID = errors.New("invalid operation id")
	ErrInvalidEntityID    = errors.New("invalid entity id")
	ErrInvalidKind        = errors.New("invalid operation kind")
	ErrPayloadMismatch    = errors.New("payload does not match operation kind")
	ErrInvalidPayload     = errors.New("invalid payload")
	ErrInvalidBaseVersion = errors.New("invalid base version")
	ErrInvalidResolution  = errors.New(app.MsgInvalidResolution)
)

// invalid tags a validator error as a permanent validation failure.
func invalid(err error) error {
	return fmt.Errorf("%w: %w", app.ErrValidation, err)
}
