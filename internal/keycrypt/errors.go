// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 João Jacome

package keycrypt

import "errors"

var (
	// ErrWrongPassphrase indicates the supplied passphrase does not
	// decrypt the key.
	ErrWrongPassphrase = errors.New("wrong passphrase")

	// ErrNotAKey indicates the data is not a parseable SSH private key.
	ErrNotAKey = errors.New("not a private key")
)
