// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 João Jacome

// Package vault provides access to a Bitwarden vault through two
// interchangeable clients.
//
// [CLIClient] shells out to the official `bw` command-line tool, which is
// the default. [ServeClient] talks to the REST API exposed by a running
// `bw serve` process instead, which avoids the per-command startup cost of
// the Node-based CLI.
//
// Both clients hold the vault session token in memory and attach it to
// every operation themselves: the CLI client passes it to child processes
// via the BW_SESSION environment variable, never on the command line, and
// the serve client relies on the serve process's own session state.
//
// Error values defined in errors.go are shared by both clients so that
// callers can use [errors.Is] for transport-agnostic error handling
// (e.g. [ErrAuth] for authentication failures, [ErrQuery] for failed
// listings).
package vault
