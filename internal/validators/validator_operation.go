// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-memo-sync/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation of a
// [models.SyncOperation] to a subset of its fields.
const (
	// FieldID targets the operation id. It may be empty before the
	// operation is appended; the log assigns one.
	FieldID = "id"

	// FieldEntityID targets the memo id the operation applies to.
	FieldEntityID = "entity_id"

	// FieldKind targets the create/update/delete discriminator.
	FieldKind = "kind"

	// FieldPayload targets the payload variant and its content rules.
	FieldPayload = "payload"

	// FieldBaseVersion targets the server version the operation is based on.
	FieldBaseVersion = "base_version"
)

// maxIDLength bounds memo and operation ids.
const maxIDLength = 128

// OperationValidator validates pending operations and their payloads. The
// content rules (title required, length limits, tag limits) live in the
// validate struct tags of the payload types and are enforced with
// go-playground/validator.
type OperationValidator struct {
	validate *validator.Validate
}

// NewOperationValidator constructs an OperationValidator and returns it as
// the Validator interface.
func NewOperationValidator() Validator {
	return &OperationValidator{
		validate: validator.New(),
	}
}

// Validate dispatches on the dynamic type of obj. Supported types are
// [models.SyncOperation], [models.CreatePayload], [models.UpdatePayload],
// [models.Resolution] and pointers to them.
func (v *OperationValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SyncOperation:
		return v.validateOperation(ctx, value, fields...)
	case *models.SyncOperation:
		return v.validateOperation(ctx, *value, fields...)

	case models.CreatePayload, models.UpdatePayload, models.DeletePayload:
		return v.validatePayload(value.(models.Payload))
	case *models.CreatePayload:
		return v.validatePayload(*value)
	case *models.UpdatePayload:
		return v.validatePayload(*value)

	case models.Resolution:
		if !value.Valid() {
			return invalid(ErrInvalidResolution)
		}
		return nil

	default:
		return invalid(ErrUnsupportedType)
	}
}

func (v *OperationValidator) validateOperation(ctx context.Context, op models.SyncOperation, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldEntityID, FieldKind, FieldPayload, FieldBaseVersion}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if len(op.ID) > maxIDLength || strings.TrimSpace(op.ID) != op.ID {
				return invalid(ErrInvalidOperationID)
			}
		case FieldEntityID:
			if op.EntityID == "" || len(op.EntityID) > maxIDLength || strings.TrimSpace(op.EntityID) != op.EntityID {
				return invalid(ErrInvalidEntityID)
			}
		case FieldKind:
			if !op.Kind.Valid() {
				return invalid(ErrInvalidKind)
			}
		case FieldPayload:
			if err := op.CheckPayload(); err != nil {
				return invalid(fmt.Errorf("%w: %w", ErrPayloadMismatch, err))
			}
			if err := v.validatePayload(op.Payload); err != nil {
				return err
			}
		case FieldBaseVersion:
			if op.BaseVersion < 0 {
				return invalid(ErrInvalidBaseVersion)
			}
			// a create has no server version to be based on
			if op.Kind == models.OperationCreate && op.BaseVersion != 0 {
				return invalid(ErrInvalidBaseVersion)
			}
		default:
			return invalid(ErrUnknownField)
		}
	}

	return nil
}

func (v *OperationValidator) validatePayload(p models.Payload) error {
	if _, ok := p.(models.DeletePayload); ok {
		return nil
	}

	if err := v.validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return invalid(fmt.Errorf("%w: %s", ErrInvalidPayload, describe(verrs)))
		}
		return invalid(fmt.Errorf("%w: %w", ErrInvalidPayload, err))
	}
	return nil
}

// describe renders validation errors as "field: rule" pairs.
func describe(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, strings.ToLower(fe.Field())+": "+fe.Tag())
	}
	return strings.Join(parts, ", ")
}
