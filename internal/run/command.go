// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 João Jacome

package run

// Command describes one external process invocation.
type Command struct {
	// Name is the binary to run, resolved via PATH.
	Name string

	// Args are the command-line arguments, not including the binary name.
	Args []string

	// Stdin, when non-nil, is fed to the child process verbatim. Used to
	// pipe key material without touching the filesystem.
	Stdin []byte

	// Env holds extra KEY=VALUE entries appended to the parent
	// environment. The vault session token is passed here rather than in
	// Args so it never shows up in process listings.
	Env []string
}
