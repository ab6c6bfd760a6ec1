// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 João Jacome

package run

import "fmt"

// CommandError reports a failed external command. It carries only the
// command name, the exit code, and a bounded stderr excerpt; arguments and
// environment are omitted because they may contain secrets.
type CommandError struct {
	// Name is the binary that was run.
	Name string

	// ExitCode is the child's exit status, or -1 if the process never ran
	// or was terminated by a signal.
	ExitCode int

	// Stderr is a trimmed, size-capped excerpt of the child's standard
	// error output.
	Stderr string

	// Err is the underlying error from os/exec.
	Err error
}

func (e *CommandError) Error() string {
	if e.ExitCode < 0 {
		return fmt.Sprintf("%s: %v", e.Name, e.Err)
	}
	if e.Stderr == "" {
		return fmt.Sprintf("%s exited with code %d", e.Name, e.ExitCode)
	}
	return fmt.Sprintf("%s exited with code %d: %s", e.Name, e.ExitCode, e.Stderr)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
