// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 João Jacome

package run

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"
)

// maxStderrBytes caps how much child stderr is retained for error
// reporting. Anything beyond the cap is discarded, not buffered.
const maxStderrBytes = 8 * 1024

// Compile-time interface check.
var _ Runner = (*ExecRunner)(nil)

// ExecRunner runs commands via os/exec.
type ExecRunner struct{}

// NewExecRunner creates an ExecRunner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes cmd and returns its standard output. Context cancellation
// kills the child process; WaitDelay gives its pipes a moment to drain
// afterwards.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) ([]byte, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)

	if cmd.Stdin != nil {
		c.Stdin = bytes.NewReader(cmd.Stdin)
	}
	if len(cmd.Env) > 0 {
		c.Env = append(os.Environ(), cmd.Env...)
	}

	var stdout bytes.Buffer
	stderr := &cappedBuffer{max: maxStderrBytes}
	c.Stdout = &stdout
	c.Stderr = stderr
	c.WaitDelay = 5 * time.Second

	if err := c.Run(); err != nil {
		return nil, &CommandError{
			Name:     cmd.Name,
			ExitCode: exitCode(err),
			Stderr:   strings.TrimSpace(stderr.String()),
			Err:      err,
		}
	}

	return stdout.Bytes(), nil
}

// exitCode extracts the child's exit status, or -1 when the process never
// produced one (start failure, signal, context cancellation).
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// cappedBuffer retains at most max bytes and silently drops the rest. It
// never returns a write error, so the child is not killed by a full pipe.
type cappedBuffer struct {
	buf bytes.Buffer
	max int
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	if remaining := b.max - b.buf.Len(); remaining > 0 {
		if len(p) > remaining {
			b.buf.Write(p[:remaining])
		} else {
			b.buf.Write(p)
		}
	}
	return len(p), nil
}

func (b *cappedBuffer) String() string {
	return b.buf.String()
}
