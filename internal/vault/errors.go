// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 João Jacome

package vault

import "errors"

// Sentinel errors shared by the CLI and serve clients. Callers match them
// with [errors.Is] to decide between fatal aborts and per-key failures.
var (
	// ErrAuth indicates a failed login, unlock, or session check. The run
	// cannot proceed without a usable session.
	ErrAuth = errors.New("vault authentication failed")

	// ErrQuery indicates a failed folder or item operation after
	// authentication succeeded.
	ErrQuery = errors.New("vault query failed")

	// ErrNotFound indicates the requested vault object does not exist.
	ErrNotFound = errors.New("vault object not found")

	// ErrAttachmentNotFound indicates the attachment referenced by an
	// item's custom field is missing. It affects only that key.
	ErrAttachmentNotFound = errors.New("attachment not found")

	// ErrInvalidID indicates an object ID that failed validation and was
	// rejected before reaching the vault.
	ErrInvalidID = errors.New("invalid vault object id")
)
