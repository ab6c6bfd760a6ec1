// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 João Jacome

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mocks.go -package=mock

// Package service implements the key-loading pipeline: authenticate to the
// vault, resolve SSH key records from the configured folder, download the
// key material, decrypt it when needed, and register it with the running
// SSH agent. Key material only ever lives in memory and is never logged.
package service

import (
	"context"
	"time"

	"github.com/joaojacome/bitwarden-ssh-agent/models"
)

// VaultClient defines the vault surface the pipeline depends on. Both the
// subprocess-backed CLI client and the `bw serve` REST client satisfy it.
type VaultClient interface {
	// SetSession installs a session token used by all subsequent calls.
	// An empty token clears the session.
	SetSession(session string)

	// Session returns the currently installed session token, or the empty
	// string when no session is held.
	Session() string

	// Status reports the lock state of the local vault. Callers switch on
	// VaultStatus.Status to decide between login, unlock, and proceeding.
	Status(ctx context.Context) (models.VaultStatus, error)

	// Login authenticates the given account and installs the resulting
	// session token on the client. The password never appears on a command
	// line or in an error message.
	Login(ctx context.Context, email, password string) error

	// Unlock unlocks an already authenticated vault with the master
	// password and installs the resulting session token on the client.
	Unlock(ctx context.Context, password string) error

	// ListFolders returns the folders whose names match the search term,
	// or all folders when search is empty. The match is server-side and
	// may be fuzzy; callers must filter for exact names themselves.
	ListFolders(ctx context.Context, search string) ([]models.Folder, error)

	// ListItems returns every item stored in the given folder, in vault
	// listing order.
	ListItems(ctx context.Context, folderID string) ([]models.Item, error)

	// FetchAttachment downloads one attachment and returns its raw bytes.
	// The material is never written to disk on the way.
	FetchAttachment(ctx context.Context, itemID, attachmentID string) ([]byte, error)
}

// Prompter supplies interactive answers for credentials and passphrases.
// Implementations must fail fast instead of blocking when no interactive
// input is possible.
type Prompter interface {
	// Input reads a single visible line under the given label.
	Input(ctx context.Context, label string) (string, error)

	// Secret reads a single masked line under the given label.
	Secret(ctx context.Context, label string) (string, error)
}

// KeyAgent is the SSH agent surface the pipeline registers keys with.
type KeyAgent interface {
	// Add hands key material to the agent. A positive lifetime asks the
	// agent to expire the key after that duration.
	Add(ctx context.Context, key []byte, lifetime time.Duration) error

	// Fingerprints lists the SHA256 fingerprints of every key the agent
	// currently holds.
	Fingerprints(ctx context.Context) ([]string, error)
}

// KeyLoader runs the end-to-end pipeline once: session, folder, items,
// then fetch, decrypt and register per key.
type KeyLoader interface {
	// Run executes one pipeline pass and returns the per-key report.
	// A non-nil error means the run aborted before any key was processed;
	// per-key failures are carried inside the report instead.
	Run(ctx context.Context) (models.Report, error)
}
