// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	Name    string
	DataDir string
	Version string
}

// ClientAdapter holds the remote memo API settings used by the adapter.
type ClientAdapter struct {
	// ServerURL is the base URL of the memo server.
	ServerURL string
	// Token is the bearer token; may be empty before login.
	Token string
	// RequestTimeout is the timeout of every outbound call.
	RequestTimeout time.Duration
}

// ClientStorage contains local cache settings.
type ClientStorage struct {
	// DSN is the path of the SQLite cache file.
	DSN string
}

// ClientNetwork contains reachability probe settings.
type ClientNetwork struct {
	ProbeURL     string
	ProbeTimeout time.Duration
	PollInterval time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the sync job runs.
	SyncInterval time.Duration
	// StaleThreshold is the cache age that triggers a startup sync.
	StaleThreshold time.Duration
	// AutoSync enables startup and background syncing.
	AutoSync bool
}

// ClientIPC contains the loopback HTTP surface settings.
type ClientIPC struct {
	Address string
}

// ClientLog contains the rotating log file settings.
type ClientLog struct {
	File       string
	MaxSizeMB  int
	MaxBackups int
	Level      string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Network ClientNetwork
	Workers ClientWorkers
	IPC     ClientIPC
	Log     ClientLog
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration.
func GetClientConfig(opts LoadOptions) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(opts)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Name:    cfg.App.Name,
			DataDir: cfg.App.DataDir,
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			ServerURL:      cfg.Adapter.ServerURL,
			Token:          cfg.Adapter.Token,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DSN: cfg.Storage.DSN,
		},
		Network: ClientNetwork{
			ProbeURL:     cfg.Network.ProbeURL,
			ProbeTimeout: cfg.Network.ProbeTimeout,
			PollInterval: cfg.Network.PollInterval,
		},
		Workers: ClientWorkers{
			SyncInterval:   cfg.Workers.SyncInterval,
			StaleThreshold: cfg.Workers.StaleThreshold,
			AutoSync:       !cfg.Workers.DisableAutoSync,
		},
		IPC: ClientIPC{
			Address: cfg.IPC.Address,
		},
		Log: ClientLog{
			File:       cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			Level:      cfg.Log.Level,
		},
	}
}
