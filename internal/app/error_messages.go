// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 João Jacome

package app

import (
	"errors"

	"github.com/joaojacome/bitwarden-ssh-agent/internal/service"
	"github.com/joaojacome/bitwarden-ssh-agent/internal/vault"
)

// Msg* constants are the human-readable messages logged when a run aborts.
// Keeping them in one place keeps the wording stable for people grepping
// their logs; the underlying error is always attached alongside.
const (
	// MsgAuthFailed is logged when login, unlock, or the status check fails.
	MsgAuthFailed = "could not authenticate to the vault"

	// MsgFolderNotFound is logged when no folder carries the configured
	// name.
	MsgFolderNotFound = "configured folder not found in the vault"

	// MsgAmbiguousFolder is logged when several folders carry the
	// configured name and none can be picked safely.
	MsgAmbiguousFolder = "more than one folder carries the configured name"

	// MsgNoKeysResolved is logged when the folder holds no loadable keys
	// and the run was configured to require some.
	MsgNoKeysResolved = "no ssh keys found in the configured folder"

	// MsgVaultQueryFailed is logged when listing folders or items fails.
	MsgVaultQueryFailed = "could not read from the vault"

	// MsgRunAborted is logged for failures outside the vault error
	// taxonomy, e.g. a cancelled context.
	MsgRunAborted = "run aborted"
)

// messageFor picks the log message for a fatal pipeline error.
func messageFor(err error) string {
	switch {
	case errors.Is(err, vault.ErrAuth):
		return MsgAuthFailed
	case errors.Is(err, service.ErrFolderNotFound):
		return MsgFolderNotFound
	case errors.Is(err, service.ErrAmbiguousFolder):
		return MsgAmbiguousFolder
	case errors.Is(err, service.ErrNoKeys):
		return MsgNoKeysResolved
	case errors.Is(err, vault.ErrQuery),
		errors.Is(err, vault.ErrNotFound),
		errors.Is(err, vault.ErrInvalidID):
		return MsgVaultQueryFailed
	default:
		return MsgRunAborted
	}
}
