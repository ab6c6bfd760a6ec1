// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 João Jacome

package app

import (
	"errors"

	"github.com/joaojacome/bitwarden-ssh-agent/internal/service"
	"github.com/joaojacome/bitwarden-ssh-agent/internal/vault"
)

// Exit codes returned by [App.Run]. Scripts branch on the broad failure
// class; the log carries the detail.
const (
	// ExitOK means the run completed and every resolved key is registered,
	// or there was nothing to do.
	ExitOK = 0

	// ExitAuthFailure means no usable vault session could be established.
	ExitAuthFailure = 1

	// ExitVaultFailure means the vault could not be queried after
	// authentication, including folder resolution failures.
	ExitVaultFailure = 2

	// ExitPartialFailure means the run completed but at least one key
	// failed to register.
	ExitPartialFailure = 3

	// ExitNoKeys means the folder resolved no keys and the run was
	// configured to require some.
	ExitNoKeys = 4
)

// exitCodeFor maps a fatal pipeline error to its exit code. Per-key
// failures never reach here; they are decided from the report.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, vault.ErrAuth):
		return ExitAuthFailure
	case errors.Is(err, service.ErrNoKeys):
		return ExitNoKeys
	default:
		return ExitVaultFailure
	}
}
