// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the merged [StructuredConfig] is well formed.
// Values are only checked when set; required fields are enforced on the
// [ClientConfig] view.
func (cfg *StructuredConfig) validate() error {
	if cfg.IPC.Address != "" {
		var addr NetAddress
		if err := addr.Set(cfg.IPC.Address); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidIPCConfigs, err)
		}
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DSN == "" || strings.Contains(cfg.Storage.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if !isHTTPURL(cfg.Adapter.ServerURL) || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if !isHTTPURL(cfg.Network.ProbeURL) || cfg.Network.ProbeTimeout <= 0 || cfg.Network.PollInterval <= 0 {
		return ErrInvalidNetworkConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.StaleThreshold <= 0 {
		return ErrInvalidWorkerConfigs
	}

	var addr NetAddress
	if err := addr.Set(cfg.IPC.Address); err != nil || !addr.IsLoopback() {
		return ErrInvalidIPCConfigs
	}

	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
