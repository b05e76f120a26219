// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-memo-sync/internal/client"
	"github.com/MKhiriev/go-memo-sync/internal/config"
	"github.com/MKhiriev/go-memo-sync/models"
	"github.com/spf13/cobra"
)

type cliOptions struct {
	overrides config.StructuredConfig
	ipc       config.NetAddress
	dotEnv    string
	timeout   time.Duration
	buildInfo models.AppBuildInfo
}

func newRootCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	opts := &cliOptions{buildInfo: buildInfo}

	root := &cobra.Command{
		Use:   "memosync",
		Short: "Local-first memo cache with background sync",
		Long: `memosync keeps a local SQLite replica of your memos, records every edit
as a pending operation and reconciles it with the memo server whenever the
network allows.

Run 'memosync serve' to start the client; the other commands talk to it
over its loopback IPC address.`,
		Version:       buildInfo.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetVersionTemplate(fmt.Sprintf("memosync %s (commit %s, built %s)\n",
		buildInfo.BuildVersion(), buildInfo.BuildCommit(), buildInfo.BuildDate()))

	flags := root.PersistentFlags()
	flags.StringVar(&opts.overrides.JSONFilePath, "config", "", "path to a JSON config file")
	flags.StringVar(&opts.dotEnv, "env-file", ".env", "optional .env file loaded before the environment is read")
	flags.StringVar(&opts.overrides.App.DataDir, "data-dir", "", "directory holding the cache database and logs")
	flags.StringVar(&opts.overrides.Storage.DSN, "db", "", "path of the SQLite cache file")
	flags.StringVar(&opts.overrides.Adapter.ServerURL, "server", "", "base URL of the memo server")
	flags.StringVar(&opts.overrides.Adapter.Token, "token", "", "bearer token for the memo server")
	flags.Var(&opts.ipc, "ipc", "loopback address of the IPC surface")
	flags.StringVar(&opts.overrides.Log.Level, "log-level", "", "log level (debug, info, warn, error)")
	flags.DurationVar(&opts.timeout, "timeout", 30*time.Second, "timeout of IPC calls made by commands")

	root.AddGroup(
		&cobra.Group{ID: "run", Title: "Client:"},
		&cobra.Group{ID: "ipc", Title: "Commands for a running client:"},
	)
	root.AddCommand(
		newServeCmd(opts),
		newStatusCmd(opts),
		newSyncCmd(opts),
		newMemosCmd(opts),
		newConflictsCmd(opts),
		newResolveCmd(opts),
		newStatsCmd(opts),
		newLogoutCmd(opts),
		newResetCmd(opts),
	)

	return root
}

func (o *cliOptions) loadConfig() (*config.ClientConfig, error) {
	overrides := o.overrides
	if o.ipc.String() != "" {
		overrides.IPC.Address = o.ipc.String()
	}

	cfg, err := config.GetClientConfig(config.LoadOptions{
		DotEnvPath: o.dotEnv,
		Overrides:  &overrides,
	})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func (o *cliOptions) ipcClient() (*client.IPCClient, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	return client.NewIPCClient(cfg.IPC.Address, o.timeout), nil
}
