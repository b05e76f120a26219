// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/go-memo-sync/models"
	"github.com/spf13/cobra"
)

func newStatusCmd(opts *cliOptions) *cobra.Command {
	var showOps bool

	cmd := &cobra.Command{
		Use:     "status",
		GroupID: "ipc",
		Short:   "Show connectivity, pending operations and conflicts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.ipcClient()
			if err != nil {
				return err
			}
			status, err := c.Status(cmd.Context())
			if err != nil {
				return err
			}
			renderStatus(cmd.OutOrStdout(), status)

			if !showOps {
				return nil
			}
			ops, err := c.PendingOperations(cmd.Context())
			if err != nil {
				return err
			}
			renderOperations(cmd.OutOrStdout(), ops)
			return nil
		},
	}
	cmd.Flags().BoolVar(&showOps, "operations", false, "list the pending operations")

	return cmd
}

func newSyncCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "sync",
		GroupID: "ipc",
		Short:   "Run a reconciliation pass now",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.ipcClient()
			if err != nil {
				return err
			}
			result, err := c.Sync(cmd.Context())
			if err != nil {
				return err
			}
			renderSyncResult(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func newMemosCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "memos",
		GroupID: "ipc",
		Short:   "List cached memos",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.ipcClient()
			if err != nil {
				return err
			}
			memos, err := c.Memos(cmd.Context())
			if err != nil {
				return err
			}
			renderMemos(cmd.OutOrStdout(), memos)
			return nil
		},
	}
	cmd.AddCommand(newMemoAddCmd(opts), newMemoEditCmd(opts), newMemoRemoveCmd(opts))

	return cmd
}

type memoFlags struct {
	title   string
	content string
	tags    []string
}

func (f *memoFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "memo title")
	cmd.Flags().StringVar(&f.content, "content", "", "memo body")
	cmd.Flags().StringSliceVar(&f.tags, "tag", nil, "memo tag, repeatable")
	_ = cmd.MarkFlagRequired("title")
}

func newMemoAddCmd(opts *cliOptions) *cobra.Command {
	var f memoFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a memo locally and queue it for sync",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.ipcClient()
			if err != nil {
				return err
			}
			memo, err := c.CreateMemo(cmd.Context(), models.CreatePayload{Title: f.title, Content: f.content, Tags: f.tags})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", okStyle.Render("created"), memo.ID)
			return nil
		},
	}
	f.bind(cmd)
	return cmd
}

func newMemoEditCmd(opts *cliOptions) *cobra.Command {
	var f memoFlags
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace the content of a memo and queue the update",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.ipcClient()
			if err != nil {
				return err
			}
			memo, err := c.UpdateMemo(cmd.Context(), args[0], models.UpdatePayload{Title: f.title, Content: f.content, Tags: f.tags})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", okStyle.Render("updated"), memo.ID)
			return nil
		},
	}
	f.bind(cmd)
	return cmd
}

func newMemoRemoveCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a memo and queue the deletion",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.ipcClient()
			if err != nil {
				return err
			}
			if err := c.DeleteMemo(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", okStyle.Render("deleted"), args[0])
			return nil
		},
	}
}

func newConflictsCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "conflicts",
		GroupID: "ipc",
		Short:   "List unresolved conflicts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.ipcClient()
			if err != nil {
				return err
			}
			conflicts, err := c.Conflicts(cmd.Context())
			if err != nil {
				return err
			}
			renderConflicts(cmd.OutOrStdout(), conflicts)
			return nil
		},
	}
}

func newResolveCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "resolve <id> <local|remote>",
		GroupID:   "ipc",
		Short:     "Resolve the conflict of a memo by keeping one side",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(models.ResolveLocal), string(models.ResolveRemote)},
		RunE: func(cmd *cobra.Command, args []string) error {
			resolution := models.Resolution(args[1])
			if !resolution.Valid() {
				return fmt.Errorf("resolution must be %q or %q", models.ResolveLocal, models.ResolveRemote)
			}
			c, err := opts.ipcClient()
			if err != nil {
				return err
			}
			outcome, err := c.Resolve(cmd.Context(), args[0], resolution)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s kept %s\n", okStyle.Render("resolved"), outcome.EntityID, outcome.Resolution)
			return nil
		},
	}
}

func newStatsCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		GroupID: "ipc",
		Short:   "Show cache statistics",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.ipcClient()
			if err != nil {
				return err
			}
			stats, err := c.Stats(cmd.Context())
			if err != nil {
				return err
			}
			renderStats(cmd.OutOrStdout(), stats)
			return nil
		},
	}
}

func newLogoutCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "logout",
		GroupID: "ipc",
		Short:   "Wipe the cache, pending operations and conflicts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.ipcClient()
			if err != nil {
				return err
			}
			if err := c.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("logged out, local data cleared"))
			return nil
		},
	}
}

func newResetCmd(opts *cliOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:     "reset",
		GroupID: "ipc",
		Short:   "Delete the cache database and start from an empty one",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("reset drops unsynced edits, pass --yes to confirm")
			}
			c, err := opts.ipcClient()
			if err != nil {
				return err
			}
			if err := c.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("local storage reset"))
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}
