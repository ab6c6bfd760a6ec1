// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 João Jacome

// Package app wires the key-loading pipeline together and turns its result
// into process output: a per-key summary on stdout, log entries on stderr,
// and an exit code scripts can branch on.
package app

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/joaojacome/bitwarden-ssh-agent/internal/agent"
	"github.com/joaojacome/bitwarden-ssh-agent/internal/config"
	"github.com/joaojacome/bitwarden-ssh-agent/internal/logger"
	"github.com/joaojacome/bitwarden-ssh-agent/internal/prompt"
	"github.com/joaojacome/bitwarden-ssh-agent/internal/run"
	"github.com/joaojacome/bitwarden-ssh-agent/internal/service"
	"github.com/joaojacome/bitwarden-ssh-agent/internal/vault"
)

// App owns one pipeline run from configuration to exit code.
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	loader service.KeyLoader
	out    io.Writer
}

// New assembles the application from the configuration: the vault client
// goes over the `bw serve` REST API when a serve URL is configured and
// shells out to the CLI otherwise, and prompting is disabled when it was
// turned off or stdin is not a terminal.
func New(cfg *config.Config, log *logger.Logger) *App {
	runner := run.NewExecRunner()

	var vaultClient service.VaultClient
	if cfg.ServeURL != "" {
		vaultClient = vault.NewServeClient(vault.ServeConfig{BaseURL: cfg.ServeURL})
		log.Debug().Str("url", cfg.ServeURL).Msg("using bw serve endpoint")
	} else {
		vaultClient = vault.NewCLIClient(runner)
	}

	var prompter service.Prompter
	if cfg.NoPrompt || !isatty.IsTerminal(os.Stdin.Fd()) {
		prompter = prompt.NewUnavailable()
	} else {
		prompter = prompt.NewTerminal()
	}

	return &App{
		cfg:    cfg,
		log:    log,
		loader: service.NewKeyLoader(vaultClient, agent.NewClient(runner), prompter, cfg, log.WithComponent("pipeline")),
		out:    os.Stdout,
	}
}

// Run executes the pipeline once and reports the result. Fatal errors are
// logged with a stable message and mapped to an exit code; a completed run
// prints the per-key summary and signals partial failure through the code.
func (a *App) Run(ctx context.Context) int {
	report, err := a.loader.Run(ctx)
	if err != nil {
		a.log.Error().Err(err).Msg(messageFor(err))
		return exitCodeFor(err)
	}

	a.printSummary(report)

	if a.cfg.Clip {
		a.copyAuthorizedKeys(report)
	}

	if report.Failed() > 0 {
		return ExitPartialFailure
	}
	return ExitOK
}
