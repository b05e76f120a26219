// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of the config file.
type StructuredJSONConfig struct {
	App struct {
		Name    string `json:"name"`
		DataDir string `json:"data_dir"`
	} `json:"app,omitempty"`

	Storage struct {
		DSN string `json:"dsn"`
	} `json:"storage,omitempty"`

	Adapter struct {
		ServerURL      string   `json:"server_url"`
		Token          string   `json:"token"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Network struct {
		ProbeURL     string   `json:"probe_url"`
		ProbeTimeout Duration `json:"probe_timeout"`
		PollInterval Duration `json:"poll_interval"`
	} `json:"network,omitempty"`

	Workers struct {
		SyncInterval    Duration `json:"sync_interval"`
		StaleThreshold  Duration `json:"stale_threshold"`
		DisableAutoSync bool     `json:"disable_auto_sync"`
	} `json:"workers,omitempty"`

	IPC struct {
		Address string `json:"address"`
	} `json:"ipc,omitempty"`

	Log struct {
		File       string `json:"file"`
		MaxSizeMB  int    `json:"max_size_mb"`
		MaxBackups int    `json:"max_backups"`
		Level      string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Name:    jsonCfg.App.Name,
			DataDir: jsonCfg.App.DataDir,
		},
		Storage: Storage{
			DSN: jsonCfg.Storage.DSN,
		},
		Adapter: Adapter{
			ServerURL:      jsonCfg.Adapter.ServerURL,
			Token:          jsonCfg.Adapter.Token,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Network: Network{
			ProbeURL:     jsonCfg.Network.ProbeURL,
			ProbeTimeout: time.Duration(jsonCfg.Network.ProbeTimeout),
			PollInterval: time.Duration(jsonCfg.Network.PollInterval),
		},
		Workers: Workers{
			SyncInterval:    time.Duration(jsonCfg.Workers.SyncInterval),
			StaleThreshold:  time.Duration(jsonCfg.Workers.StaleThreshold),
			DisableAutoSync: jsonCfg.Workers.DisableAutoSync,
		},
		IPC: IPC{
			Address: jsonCfg.IPC.Address,
		},
		Log: Log{
			File:       jsonCfg.Log.File,
			MaxSizeMB:  jsonCfg.Log.MaxSizeMB,
			MaxBackups: jsonCfg.Log.MaxBackups,
			Level:      jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
