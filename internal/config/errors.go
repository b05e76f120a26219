// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid remote API settings
	// (for example, a malformed server URL or zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid cache settings
	// (for example, empty DSN or an in-memory DSN that cannot survive a restart).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidNetworkConfigs indicates invalid probe settings.
	ErrInvalidNetworkConfigs = errors.New("invalid network configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero sync interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidIPCConfigs indicates an IPC address that is malformed or
	// not bound to loopback.
	ErrInvalidIPCConfigs = errors.New("invalid ipc configuration")
)
