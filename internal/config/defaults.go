// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Default values applied when no other source sets a field.
const (
	DefaultAppName        = "memosync"
	DefaultServerURL      = "http://localhost:3000"
	DefaultRequestTimeout = 10 * time.Second
	DefaultProbeTimeout   = 5 * time.Second
	DefaultPollInterval   = 30 * time.Second
	DefaultSyncInterval   = 5 * time.Minute
	DefaultStaleThreshold = 5 * time.Minute
	DefaultIPCAddress     = "127.0.0.1:7420"
	DefaultLogMaxSizeMB   = 10
	DefaultLogMaxBackups  = 3
)

// defaults builds the lowest-priority config. Paths derived from the data
// directory and the probe URL derived from the server URL follow whatever
// higher-priority sources already chose.
func defaults(configs []*StructuredConfig) *StructuredConfig {
	dataDir := firstNonEmpty(configs, func(c *StructuredConfig) string { return c.App.DataDir })
	if dataDir == "" {
		dataDir = defaultDataDir()
	}

	serverURL := firstNonEmpty(configs, func(c *StructuredConfig) string { return c.Adapter.ServerURL })
	if serverURL == "" {
		serverURL = DefaultServerURL
	}

	return &StructuredConfig{
		App: App{
			Name:    DefaultAppName,
			DataDir: dataDir,
		},
		Storage: Storage{
			DSN: filepath.Join(dataDir, "memosync.db"),
		},
		Adapter: Adapter{
			ServerURL:      DefaultServerURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Network: Network{
			ProbeURL:     strings.TrimRight(serverURL, "/") + "/health",
			ProbeTimeout: DefaultProbeTimeout,
			PollInterval: DefaultPollInterval,
		},
		Workers: Workers{
			SyncInterval:   DefaultSyncInterval,
			StaleThreshold: DefaultStaleThreshold,
		},
		IPC: IPC{
			Address: DefaultIPCAddress,
		},
		Log: Log{
			File:       filepath.Join(dataDir, "logs", "memosync.log"),
			MaxSizeMB:  DefaultLogMaxSizeMB,
			MaxBackups: DefaultLogMaxBackups,
		},
	}
}

func firstNonEmpty(configs []*StructuredConfig, get func(*StructuredConfig) string) string {
	for _, c := range configs {
		if v := get(c); v != "" {
			return v
		}
	}
	return ""
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, DefaultAppName)
	}
	return "." + DefaultAppName
}
