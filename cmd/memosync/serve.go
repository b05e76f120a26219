// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/go-memo-sync/internal/client"
	"github.com/MKhiriev/go-memo-sync/internal/logger"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *cliOptions) *cobra.Command {
	var noAutoSync bool

	cmd := &cobra.Command{
		Use:     "serve",
		GroupID: "run",
		Short:   "Open the cache, start background sync and serve the IPC surface",
		Long: `Open the local cache, start the connectivity poller and the periodic sync
job, and serve the loopback IPC surface until interrupted.

Logs go to a size-rotated file under the data directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noAutoSync {
				opts.overrides.Workers.DisableAutoSync = true
			}
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			log := logger.NewClientLogger(cfg.App.Name, logger.FileOptions{
				Path:       cfg.Log.File,
				MaxSizeMB:  cfg.Log.MaxSizeMB,
				MaxBackups: cfg.Log.MaxBackups,
				Level:      cfg.Log.Level,
			})

			app, err := client.NewApp(cfg, opts.buildInfo, log)
			if err != nil {
				log.Error().Err(err).Msg("init client app error")
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render("memosync "+opts.buildInfo.BuildVersion()))
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render("cache:"), cfg.Storage.DSN)
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render("server:"), cfg.Adapter.ServerURL)
			fmt.Fprintf(out, "%s http://%s\n", labelStyle.Render("ipc:"), cfg.IPC.Address)
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render("logs:"), cfg.Log.File)

			if err := app.Run(cmd.Context()); err != nil {
				log.Error().Err(err).Msg("client run error")
				return err
			}
			fmt.Fprintln(out, okStyle.Render("stopped"))
			return nil
		},
	}
	cmd.Flags().BoolVar(&noAutoSync, "no-auto-sync", false, "disable startup and background syncing")

	return cmd
}
