// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// OperationKind names the mutation carried by a [SyncOperation].
type OperationKind string

const (
	OperationCreate OperationKind = "create"
	OperationUpdate OperationKind = "update"
	OperationDelete OperationKind = "delete"
)

// Valid reports whether k is one of the known kinds.
func (k OperationKind) Valid() bool {
	switch k {
	case OperationCreate, OperationUpdate, OperationDelete:
		return true
	}
	return false
}

// Payload is the body of a queued mutation. The concrete type is fixed by
// the operation kind: [CreatePayload], [UpdatePayload] or [DeletePayload].
type Payload interface {
	Kind() OperationKind
}

// CreatePayload carries the full content of a memo created locally.
type CreatePayload struct {
	Title   string   `json:"title" validate:"required,max=200"`
	Content string   `json:"content" validate:"max=100000"`
	Tags    []string `json:"tags" validate:"max=50,dive,required,max=50"`
}

// Kind implements [Payload].
func (CreatePayload) Kind() OperationKind { return OperationCreate }

// UpdatePayload carries the full replacement content of an edited memo.
type UpdatePayload struct {
	Title   string   `json:"title" validate:"required,max=200"`
	Content string   `json:"content" validate:"max=100000"`
	Tags    []string `json:"tags" validate:"max=50,dive,required,max=50"`
}

// Kind implements [Payload].
func (UpdatePayload) Kind() OperationKind { return OperationUpdate }

// DeletePayload is the empty body of a delete.
type DeletePayload struct{}

// Kind implements [Payload].
func (DeletePayload) Kind() OperationKind { return OperationDelete }

// SyncOperation is a single local mutation not yet acknowledged by the
// server.
type SyncOperation struct {
	// ID is unique per operation (UUIDv7, so ids also sort by creation).
	ID string `json:"id"`

	// EntityID is the memo the operation targets.
	EntityID string `json:"entity_id"`

	Kind    OperationKind `json:"kind"`
	Payload Payload       `json:"-"`

	// BaseVersion is the server version the mutation was made against.
	BaseVersion int64 `json:"base_version"`

	// CreatedAt orders operations of the same entity.
	CreatedAt time.Time `json:"created_at"`

	Attempts  int            `json:"attempts"`
	State     OperationState `json:"state"`
	LastError string         `json:"last_error,omitempty"`
}

// NewCreateOperation builds a queued create for entityID.
func NewCreateOperation(entityID string, p CreatePayload) SyncOperation {
	return SyncOperation{EntityID: entityID, Kind: OperationCreate, Payload: p, State: StateQueued}
}

// NewUpdateOperation builds a queued update for entityID based on baseVersion.
func NewUpdateOperation(entityID string, baseVersion int64, p UpdatePayload) SyncOperation {
	return SyncOperation{EntityID: entityID, Kind: OperationUpdate, Payload: p, BaseVersion: baseVersion, State: StateQueued}
}

// NewDeleteOperation builds a queued delete for entityID based on baseVersion.
func NewDeleteOperation(entityID string, baseVersion int64) SyncOperation {
	return SyncOperation{EntityID: entityID, Kind: OperationDelete, Payload: DeletePayload{}, BaseVersion: baseVersion, State: StateQueued}
}

// CheckPayload verifies that the payload variant matches Kind.
func (o SyncOperation) CheckPayload() error {
	if !o.Kind.Valid() {
		return fmt.Errorf("unknown operation kind %q", o.Kind)
	}
	if o.Payload == nil {
		return fmt.Errorf("operation %q has no payload", o.Kind)
	}
	if o.Payload.Kind() != o.Kind {
		return fmt.Errorf("payload of kind %q does not match operation kind %q", o.Payload.Kind(), o.Kind)
	}
	return nil
}

// Fields returns title, content and tags a create or update would write.
// ok is false for deletes.
func (o SyncOperation) Fields() (title, content string, tags []string, ok bool) {
	switch p := o.Payload.(type) {
	case CreatePayload:
		return p.Title, p.Content, p.Tags, true
	case UpdatePayload:
		return p.Title, p.Content, p.Tags, true
	}
	return "", "", nil, false
}

// EncodePayload serialises the payload for storage.
func EncodePayload(p Payload) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("nil payload")
	}
	return json.Marshal(p)
}

// DecodePayload restores the payload variant selected by kind.
func DecodePayload(kind OperationKind, raw []byte) (Payload, error) {
	switch kind {
	case OperationCreate:
		var p CreatePayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode create payload: %w", err)
		}
		return p, nil
	case OperationUpdate:
		var p UpdatePayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode update payload: %w", err)
		}
		return p, nil
	case OperationDelete:
		return DeletePayload{}, nil
	}
	return nil, fmt.Errorf("unknown operation kind %q", kind)
}

// MarshalJSON embeds the payload next to the operation fields.
func (o SyncOperation) MarshalJSON() ([]byte, error) {
	type plain SyncOperation
	var raw json.RawMessage
	if o.Payload != nil {
		b, err := EncodePayload(o.Payload)
		if err != nil {
			return nil, err
		}
		raw = b
	}
	return json.Marshal(struct {
		plain
		Payload json.RawMessage `json:"payload,omitempty"`
	}{plain: plain(o), Payload: raw})
}

// UnmarshalJSON decodes the payload according to the kind field.
func (o *SyncOperation) UnmarshalJSON(b []byte) error {
	type plain SyncOperation
	aux := struct {
		*plain
		Payload json.RawMessage `json:"payload"`
	}{plain: (*plain)(o)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if o.Kind == "" {
		return nil
	}
	if len(aux.Payload) == 0 {
		aux.Payload = json.RawMessage("{}")
	}
	p, err := DecodePayload(o.Kind, aux.Payload)
	if err != nil {
		return err
	}
	o.Payload = p
	return nil
}
