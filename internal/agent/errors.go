// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 João Jacome

package agent

import "errors"

var (
	// ErrUnavailable indicates no agent could be reached over
	// SSH_AUTH_SOCK.
	ErrUnavailable = errors.New("ssh agent unavailable")

	// ErrAddFailed indicates ssh-add rejected a key.
	ErrAddFailed = errors.New("ssh-add failed")
)
