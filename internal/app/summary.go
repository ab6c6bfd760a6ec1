// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 João Jacome

package app

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"

	"github.com/joaojacome/bitwarden-ssh-agent/models"
)

var (
	loadedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	detailStyle = lipgloss.NewStyle().Faint(true)
)

// printSummary writes one line per processed key plus a totals line.
// Stdout carries only this summary; everything else goes to the log.
func (a *App) printSummary(report models.Report) {
	for _, outcome := range report.Outcomes {
		switch {
		case outcome.State == models.StateFailed:
			fmt.Fprintf(a.out, "%s %s: %s: %s\n",
				failedStyle.Render("failed"),
				outcome.Record.ItemName,
				outcome.FailedStage,
				outcome.Reason,
			)
		case outcome.AlreadyLoaded:
			fmt.Fprintf(a.out, "%s %s %s\n",
				loadedStyle.Render("loaded"),
				outcome.Record.ItemName,
				detailStyle.Render("(already in agent)"),
			)
		default:
			fmt.Fprintf(a.out, "%s %s %s\n",
				loadedStyle.Render("loaded"),
				outcome.Record.ItemName,
				detailStyle.Render(outcome.Fingerprint),
			)
		}
	}

	fmt.Fprintf(a.out, "%d registered, %d failed, %d skipped\n",
		report.Registered(), report.Failed(), report.Skipped)
}

// authorizedKeyLines collects the public-key lines of the keys newly
// registered in this run. Keys the agent already held stay out, as do
// keys whose public half could not be derived.
func authorizedKeyLines(report models.Report) []string {
	var lines []string
	for _, outcome := range report.Outcomes {
		if outcome.State == models.StateRegistered && outcome.AuthorizedKey != "" {
			lines = append(lines, outcome.AuthorizedKey)
		}
	}
	return lines
}

// copyAuthorizedKeys puts the public-key lines on the system clipboard.
// Only public halves travel this way; a clipboard failure is logged and
// otherwise ignored.
func (a *App) copyAuthorizedKeys(report models.Report) {
	lines := authorizedKeyLines(report)
	if len(lines) == 0 {
		return
	}

	if err := clipboard.WriteAll(strings.Join(lines, "\n") + "\n"); err != nil {
		a.log.Warn().Err(err).Msg("could not copy public keys to clipboard")
		return
	}

	a.log.Info().Int("keys", len(lines)).Msg("public keys copied to clipboard")
}
