// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 João Jacome

package prompt

import "errors"

var (
	// ErrNotInteractive indicates no interactive prompt can be shown,
	// either because stdin is not a terminal or prompting was disabled.
	ErrNotInteractive = errors.New("interactive prompt unavailable")

	// ErrAborted indicates the user cancelled the prompt.
	ErrAborted = errors.New("prompt aborted")
)
