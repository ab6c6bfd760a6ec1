// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 João Jacome

package prompt

import "context"

// Unavailable refuses every prompt with [ErrNotInteractive]. It stands in
// for the terminal provider when prompting is disabled or stdin is not a
// terminal, so that callers fail fast instead of hanging on input.
type Unavailable struct{}

// NewUnavailable creates an [Unavailable] provider.
func NewUnavailable() *Unavailable {
	return &Unavailable{}
}

// Input always returns [ErrNotInteractive].
func (*Unavailable) Input(context.Context, string) (string, error) {
	return "", ErrNotInteractive
}

// Secret always returns [ErrNotInteractive].
func (*Unavailable) Secret(context.Context, string) (string, error) {
	return "", ErrNotInteractive
}
