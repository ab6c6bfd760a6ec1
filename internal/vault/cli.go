// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 João Jacome

package vault

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/joaojacome/bitwarden-ssh-agent/internal/run"
	"github.com/joaojacome/bitwarden-ssh-agent/models"
)

// bwBinary is the Bitwarden CLI executable, resolved via PATH.
const bwBinary = "bw"

// masterPasswordEnv carries the master password into login and unlock
// child processes. Passing it by environment keeps it out of argv and
// process listings.
const masterPasswordEnv = "BW_PASSWORD"

// noInteractionVersion is the first CLI release that understands the
// --nointeraction flag.
var noInteractionVersion = [3]int{1, 9, 0}

// CLIClient drives the official `bw` command-line tool. One CLI process is
// spawned per operation; the session token is handed to each of them via
// the BW_SESSION environment variable.
type CLIClient struct {
	runner run.Runner

	mu      sync.RWMutex
	session string

	versionOnce sync.Once
	version     string
	versionErr  error
}

// NewCLIClient creates a CLIClient that launches commands through runner.
func NewCLIClient(runner run.Runner) *CLIClient {
	return &CLIClient{runner: runner}
}

// SetSession stores the session token attached to all subsequent calls.
func (c *CLIClient) SetSession(session string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = strings.TrimSpace(session)
}

// Session returns the session token currently held by the client, or an
// empty string if none has been set yet.
func (c *CLIClient) Session() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

// Version reports the CLI version string, e.g. "2024.2.1". The first call
// runs `bw --version`; the result, or the failure, is cached for the
// process lifetime.
func (c *CLIClient) Version(ctx context.Context) (string, error) {
	c.versionOnce.Do(func() {
		out, err := c.runner.Run(ctx, run.Command{
			Name: bwBinary,
			Args: []string{"--version"},
		})
		if err != nil {
			c.versionErr = fmt.Errorf("read cli version: %w", err)
			return
		}
		c.version = strings.TrimSpace(string(out))
	})
	return c.version, c.versionErr
}

// Status reports whether the vault is unauthenticated, locked, or unlocked.
func (c *CLIClient) Status(ctx context.Context) (models.VaultStatus, error) {
	out, err := c.runner.Run(ctx, run.Command{
		Name: bwBinary,
		Args: c.commandArgs(ctx, "status"),
		Env:  c.sessionEnv(),
	})
	if err != nil {
		return models.VaultStatus{}, fmt.Errorf("%w: %v", ErrAuth, err)
	}

	var status models.VaultStatus
	if err := json.Unmarshal(out, &status); err != nil {
		return models.VaultStatus{}, fmt.Errorf("%w: decode status: %v", ErrAuth, err)
	}
	return status, nil
}

// Login signs in with the given credentials and stores the returned
// session token. The master password travels in the child environment,
// never as an argument.
func (c *CLIClient) Login(ctx context.Context, email, password string) error {
	out, err := c.runner.Run(ctx, run.Command{
		Name: bwBinary,
		Args: c.commandArgs(ctx, "login", email, "--passwordenv", masterPasswordEnv, "--raw"),
		Env:  []string{masterPasswordEnv + "=" + password},
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAuth, err)
	}

	session := strings.TrimSpace(string(out))
	if session == "" {
		return fmt.Errorf("%w: login returned no session", ErrAuth)
	}
	c.SetSession(session)
	return nil
}

// Unlock opens a locked vault with the master password and stores the
// returned session token.
func (c *CLIClient) Unlock(ctx context.Context, password string) error {
	out, err := c.runner.Run(ctx, run.Command{
		Name: bwBinary,
		Args: c.commandArgs(ctx, "unlock", "--passwordenv", masterPasswordEnv, "--raw"),
		Env:  []string{masterPasswordEnv + "=" + password},
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAuth, err)
	}

	session := strings.TrimSpace(string(out))
	if session == "" {
		return fmt.Errorf("%w: unlock returned no session", ErrAuth)
	}
	c.SetSession(session)
	return nil
}

// ListFolders returns the folders whose names contain search, or all
// folders when search is empty. The match is server-side and fuzzy;
// callers needing an exact name must filter the result themselves.
func (c *CLIClient) ListFolders(ctx context.Context, search string) ([]models.Folder, error) {
	args := []string{"list", "folders"}
	if search != "" {
		args = append(args, "--search", search)
	}

	out, err := c.runner.Run(ctx, run.Command{
		Name: bwBinary,
		Args: c.commandArgs(ctx, args...),
		Env:  c.sessionEnv(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: list folders: %v", ErrQuery, err)
	}

	var folders []models.Folder
	if err := json.Unmarshal(out, &folders); err != nil {
		return nil, fmt.Errorf("%w: decode folders: %v", ErrQuery, err)
	}
	return folders, nil
}

// ListItems returns every item in the given folder.
func (c *CLIClient) ListItems(ctx context.Context, folderID string) ([]models.Item, error) {
	if err := validateID(folderID); err != nil {
		return nil, err
	}

	out, err := c.runner.Run(ctx, run.Command{
		Name: bwBinary,
		Args: c.commandArgs(ctx, "list", "items", "--folderid", folderID),
		Env:  c.sessionEnv(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: list items: %v", ErrQuery, err)
	}

	var items []models.Item
	if err := json.Unmarshal(out, &items); err != nil {
		return nil, fmt.Errorf("%w: decode items: %v", ErrQuery, err)
	}
	return items, nil
}

// FetchAttachment downloads one attachment and returns its bytes exactly
// as stored. The content travels from the CLI's stdout straight into
// memory; nothing touches the filesystem.
func (c *CLIClient) FetchAttachment(ctx context.Context, itemID, attachmentID string) ([]byte, error) {
	if err := validateID(itemID); err != nil {
		return nil, err
	}
	if err := validateAttachmentID(attachmentID); err != nil {
		return nil, err
	}

	out, err := c.runner.Run(ctx, run.Command{
		Name: bwBinary,
		Args: c.commandArgs(ctx, "get", "attachment", attachmentID, "--itemid", itemID, "--raw"),
		Env:  c.sessionEnv(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: get attachment: %v", ErrQuery, err)
	}
	return out, nil
}

// commandArgs prefixes global flags to a subcommand invocation. CLI
// releases that understand it get --nointeraction, so no command ever
// blocks on a hidden prompt.
func (c *CLIClient) commandArgs(ctx context.Context, args ...string) []string {
	if c.supportsNoInteraction(ctx) {
		return append([]string{"--nointeraction"}, args...)
	}
	return args
}

// sessionEnv returns the extra child environment carrying the session
// token, or nil when no session is held yet.
func (c *CLIClient) sessionEnv() []string {
	if session := c.Session(); session != "" {
		return []string{"BW_SESSION=" + session}
	}
	return nil
}

// supportsNoInteraction reports whether the installed CLI understands the
// --nointeraction flag. Unknown or unparsable versions are treated as not
// supporting it.
func (c *CLIClient) supportsNoInteraction(ctx context.Context) bool {
	version, err := c.Version(ctx)
	if err != nil {
		return false
	}
	return versionAtLeast(version, noInteractionVersion)
}

// versionAtLeast compares a dotted version string against min, numerically
// per component. Missing components count as zero; non-numeric components
// fail the comparison.
func versionAtLeast(version string, min [3]int) bool {
	parts := strings.SplitN(strings.TrimSpace(version), ".", 3)
	for i := 0; i < 3; i++ {
		got := 0
		if i < len(parts) {
			n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
			if err != nil {
				return false
			}
			got = n
		}
		if got != min[i] {
			return got > min[i]
		}
	}
	return true
}

// validateID rejects object IDs that are not well-formed UUIDs before they
// are spliced into a command line.
func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

// validateAttachmentID rejects attachment IDs that are empty or could be
// mistaken for a flag. Unlike folder and item IDs, attachment IDs are not
// UUIDs.
func validateAttachmentID(id string) error {
	if id == "" || strings.HasPrefix(id, "-") {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}
