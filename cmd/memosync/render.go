// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/go-memo-sync/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

const timeLayout = "2006-01-02 15:04:05"

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "never"
	}
	return t.Local().Format(timeLayout)
}

func field(label string, value any) string {
	return fmt.Sprintf("%s %v", labelStyle.Render(label), value)
}

func renderStatus(w io.Writer, s models.SyncStatus) {
	network := okStyle.Render("online")
	if !s.IsOnline {
		network = warnStyle.Render("offline")
	}
	pending := fmt.Sprint(s.PendingOperations)
	if s.PendingOperations > 0 {
		pending = warnStyle.Render(pending)
	}

	lines := []string{
		titleStyle.Render("Sync status"),
		field("network:    ", network),
		field("pending:    ", pending),
		field("conflicts:  ", len(s.Conflicts)),
		field("last sync:  ", formatTime(s.LastSyncTime)),
	}
	if s.InProgress {
		lines = append(lines, warnStyle.Render("a sync pass is running"))
	}
	fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n")))
}

func renderOperations(w io.Writer, ops []models.SyncOperation) {
	if len(ops) == 0 {
		fmt.Fprintln(w, labelStyle.Render("no pending operations"))
		return
	}
	for _, op := range ops {
		line := fmt.Sprintf("%-7s %s  base=%d  %s  attempts=%d", op.Kind, op.EntityID, op.BaseVersion, op.State, op.Attempts)
		if op.LastError != "" {
			line += "  " + errorStyle.Render(op.LastError)
		}
		fmt.Fprintln(w, line)
	}
}

func renderSyncResult(w io.Writer, r models.SyncResult) {
	if r.Success {
		fmt.Fprintf(w, "%s %d change(s) synced\n", okStyle.Render("✓"), r.Synced)
	} else {
		fmt.Fprintf(w, "%s sync incomplete, %d change(s) synced\n", warnStyle.Render("!"), r.Synced)
	}
	for _, c := range r.Conflicts {
		fmt.Fprintf(w, "  %s %s (%s)\n", warnStyle.Render("conflict"), c.EntityID, c.Kind)
	}
	for _, e := range r.Errors {
		target := e.EntityID
		if target == "" {
			target = "-"
		}
		fmt.Fprintf(w, "  %s %s %s: %s\n", errorStyle.Render(string(e.Class)), e.Kind, target, e.Message)
	}
}

func renderMemos(w io.Writer, memos []models.CachedMemo) {
	if len(memos) == 0 {
		fmt.Fprintln(w, labelStyle.Render("the cache is empty"))
		return
	}
	for _, m := range memos {
		marker := " "
		switch {
		case m.PendingDelete:
			marker = errorStyle.Render("-")
		case m.Dirty:
			marker = warnStyle.Render("*")
		}
		title := titleStyle.Render(m.Title)
		if len(m.Tags) > 0 {
			title += " " + labelStyle.Render("["+strings.Join(m.Tags, ", ")+"]")
		}
		fmt.Fprintf(w, "%s %s  v%d  %s\n", marker, m.ID, m.SyncVersion, title)
	}
}

func renderConflicts(w io.Writer, conflicts []models.ConflictRecord) {
	if len(conflicts) == 0 {
		fmt.Fprintln(w, okStyle.Render("no unresolved conflicts"))
		return
	}
	for _, c := range conflicts {
		lines := []string{
			titleStyle.Render(c.EntityID) + " " + warnStyle.Render(string(c.Kind)),
			field("detected:", formatTime(&c.DetectedAt)),
			field("local:   ", describeSide(c.Local)),
			field("remote:  ", describeSide(c.Remote)),
		}
		fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n")))
	}
}

func describeSide(s *models.MemoSnapshot) string {
	if s == nil {
		return errorStyle.Render("deleted")
	}
	return fmt.Sprintf("%q v%d", s.Title, s.Version)
}

func renderStats(w io.Writer, s models.CacheStats) {
	lines := []string{
		titleStyle.Render("Cache"),
		field("memos:    ", s.TotalMemos),
		field("size:     ", fmt.Sprintf("%d bytes", s.TotalSize)),
		field("last sync:", formatTime(s.LastSyncTime)),
	}
	fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n")))
}
