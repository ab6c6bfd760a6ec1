// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 João Jacome

// Package run provides a minimal abstraction over launching external
// processes.
//
// The primary abstraction is [Runner], which decouples the vault and agent
// adapters from os/exec so they can be tested against a mock. The package
// ships one real implementation, [ExecRunner].
//
// Commands frequently carry secrets: the session token travels in the child
// environment and private keys travel on stdin. Neither is ever included in
// errors or log output; [CommandError] deliberately records only the command
// name, the exit code, and a bounded stderr excerpt.
package run

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/runner_mock.go -package=mock

// Runner executes a single external command to completion.
// Implementations must honor context cancellation by killing the child
// process.
type Runner interface {
	// Run starts the command, feeds it cmd.Stdin if present, waits for it
	// to exit, and returns its standard output. A non-zero exit status is
	// reported as a [*CommandError] wrapping the underlying exec error.
	Run(ctx context.Context, cmd Command) ([]byte, error)
}
