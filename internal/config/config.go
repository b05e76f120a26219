// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "MEMOSYNC_"

// StructuredConfig is the top-level configuration container for the memo
// sync client. It aggregates all sub-configurations and is populated by
// merging values from command-line overrides, environment variables, an
// optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the local cache database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote memo API settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Network holds the reachability probe settings.
	Network Network `envPrefix:"NETWORK_"`

	// Workers holds the background sync job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// IPC holds the loopback HTTP surface settings.
	IPC IPC `envPrefix:"IPC_"`

	// Log holds the rotating log file settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: MEMOSYNC_CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Name is used as the logger role and in CLI output.
	// Env: MEMOSYNC_APP_NAME
	Name string `env:"NAME"`

	// DataDir is the directory holding the cache database and logs.
	// Env: MEMOSYNC_APP_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// Version is the semantic version string of the running client.
	// Env: MEMOSYNC_APP_VERSION
	Version string `env:"VERSION"`
}

// Storage holds the local SQLite cache settings.
type Storage struct {
	// DSN is the path of the SQLite cache file.
	// Env: MEMOSYNC_STORAGE_DSN
	DSN string `env:"DSN"`
}

// Adapter holds configuration of the remote memo API client.
type Adapter struct {
	// ServerURL is the base URL of the memo server (e.g. "http://localhost:3000").
	// Env: MEMOSYNC_ADAPTER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// Token is the bearer token sent with every request.
	// Env: MEMOSYNC_ADAPTER_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout bounds every remote call; exceeding it is a transient
	// failure.
	// Env: MEMOSYNC_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Network holds the reachability probe settings.
type Network struct {
	// ProbeURL is requested by connectivity checks. Defaults to the
	// server health endpoint.
	// Env: MEMOSYNC_NETWORK_PROBE_URL
	ProbeURL string `env:"PROBE_URL"`

	// ProbeTimeout bounds one connectivity check, retries included.
	// Env: MEMOSYNC_NETWORK_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT"`

	// PollInterval is the period of the background probe loop.
	// Env: MEMOSYNC_NETWORK_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is the period of the background sync job.
	// Env: MEMOSYNC_WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// StaleThreshold is the cache age after which the startup loader asks
	// for an automatic sync.
	// Env: MEMOSYNC_WORKERS_STALE_THRESHOLD
	StaleThreshold time.Duration `env:"STALE_THRESHOLD"`

	// DisableAutoSync turns off startup and background syncing; manual
	// sync keeps working.
	// Env: MEMOSYNC_WORKERS_DISABLE_AUTO_SYNC
	DisableAutoSync bool `env:"DISABLE_AUTO_SYNC"`
}

// IPC holds the loopback HTTP surface settings.
type IPC struct {
	// Address is the host:port the IPC server listens on.
	// Env: MEMOSYNC_IPC_ADDRESS
	Address string `env:"ADDRESS"`
}

// Log holds the rotating log file settings.
type Log struct {
	// File is the active log file path.
	// Env: MEMOSYNC_LOG_FILE
	File string `env:"FILE"`

	// MaxSizeMB is the size at which the log file is rotated.
	// Env: MEMOSYNC_LOG_MAX_SIZE_MB
	MaxSizeMB int `env:"MAX_SIZE_MB"`

	// MaxBackups is the number of rotated files kept.
	// Env: MEMOSYNC_LOG_MAX_BACKUPS
	MaxBackups int `env:"MAX_BACKUPS"`

	// Level is a zerolog level name.
	// Env: MEMOSYNC_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// LoadOptions tells [GetStructuredConfig] where to look besides the
// process environment.
type LoadOptions struct {
	// DotEnvPath is an optional .env file loaded into the environment
	// before it is parsed. A missing file is not an error.
	DotEnvPath string

	// Overrides holds values set explicitly on the command line.
	Overrides *StructuredConfig
}

// GetStructuredConfig loads, merges, and validates the client configuration
// from all available sources in the following priority order (first source
// wins for non-zero fields):
//  1. Command-line overrides
//  2. Environment variables (after loading the optional .env file)
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig(opts LoadOptions) (*StructuredConfig, error) {
	return newConfigBuilder().
		withOverrides(opts.Overrides).
		withDotEnv(opts.DotEnvPath).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
