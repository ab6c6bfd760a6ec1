// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 João Jacome

// Package agent registers SSH keys with the running ssh-agent.
//
// Keys are handed to the stock ssh-add binary on stdin, so they are never
// written to disk and ssh-add keeps its usual behavior (key blacklisting,
// agent forwarding constraints, askpass integration). Listing loaded keys
// bypasses ssh-add and speaks the agent protocol directly over
// SSH_AUTH_SOCK.
package agent

import (
	"context"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/ssh"
	sshagent "golang.org/x/crypto/ssh/agent"

	"github.com/joaojacome/bitwarden-ssh-agent/internal/run"
)

// sshAddBinary is the OpenSSH key-loading tool, resolved via PATH.
const sshAddBinary = "ssh-add"

// authSockEnv names the Unix socket of the running agent.
const authSockEnv = "SSH_AUTH_SOCK"

// Client adds keys to and inspects the ambient ssh-agent.
type Client struct {
	runner run.Runner
}

// NewClient creates a Client that launches ssh-add through runner.
func NewClient(runner run.Runner) *Client {
	return &Client{runner: runner}
}

// Add registers one plain private key with the agent by piping it to
// `ssh-add -`. A positive lifetime is passed as -t so the agent expires
// the key on its own; zero or negative keeps the key until the agent
// exits.
func (c *Client) Add(ctx context.Context, key []byte, lifetime time.Duration) error {
	var args []string
	if lifetime > 0 {
		args = append(args, "-t", strconv.Itoa(int(lifetime.Seconds())))
	}
	args = append(args, "-")

	if _, err := c.runner.Run(ctx, run.Command{
		Name:  sshAddBinary,
		Args:  args,
		Stdin: key,
	}); err != nil {
		return fmt.Errorf("%w: %v", ErrAddFailed, err)
	}
	return nil
}

// Fingerprints returns the SHA256 fingerprints of every key currently
// loaded in the agent. Returns [ErrUnavailable] when no agent socket is
// reachable.
func (c *Client) Fingerprints(ctx context.Context) ([]string, error) {
	sock := os.Getenv(authSockEnv)
	if sock == "" {
		return nil, fmt.Errorf("%w: %s is not set", ErrUnavailable, authSockEnv)
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", sock)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer conn.Close()

	keys, err := sshagent.NewClient(conn).List()
	if err != nil {
		return nil, fmt.Errorf("list agent keys: %w", err)
	}

	fingerprints := make([]string, 0, len(keys))
	for _, key := range keys {
		fingerprints = append(fingerprints, ssh.FingerprintSHA256(key))
	}
	return fingerprints, nil
}
