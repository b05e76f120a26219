// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities used across the
// memo sync client: typed context keys, content digests, per-key locking,
// HTTP response writing, the resty client constructor, bearer token
// inspection and UUID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SyncTriggerCtxKey is the key under which the origin of a sync pass
// ("manual", "periodic", "online", "startup") is stored in the context.
var SyncTriggerCtxKey = contextKey("syncTrigger")

// WithSyncTrigger returns a copy of ctx labelled with the sync trigger.
func WithSyncTrigger(ctx context.Context, trigger string) context.Context {
	return context.WithValue(ctx, SyncTriggerCtxKey, trigger)
}

// GetSyncTriggerFromContext retrieves the sync trigger label from ctx.
// An unlabelled context yields "manual".
func GetSyncTriggerFromContext(ctx context.Context) string {
	trigger, ok := ctx.Value(SyncTriggerCtxKey).(string)
	if !ok || trigger == "" {
		return "manual"
	}
	return trigger
}
