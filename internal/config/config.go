// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 João Jacome

package config

import (
	"time"
)

// Built-in defaults applied as the lowest-priority configuration source.
const (
	// DefaultFolderName is the vault folder searched for SSH key items.
	DefaultFolderName = "ssh-agent"

	// DefaultCustomField is the custom field naming the attachment that
	// holds the private key.
	DefaultCustomField = "private"

	// DefaultPassphraseField is the custom field holding the stored
	// passphrase for an encrypted key.
	DefaultPassphraseField = "passphrase"

	// DefaultLifetime is the agent-side expiry applied to registered keys.
	DefaultLifetime = 4 * time.Hour
)

// NoLifetime marks an explicitly disabled agent-side expiry: the key stays
// in the agent until it exits. Set by passing a zero lifetime on the
// command line or a negative duration from any other source.
const NoLifetime time.Duration = -1

// Config is the runtime configuration of the key-loading pipeline. It is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - env:  environment variable name (caarlos0/env).
//   - json: field name in the optional JSON config file.
type Config struct {
	// Debug enables verbose diagnostic output. Key material and session
	// tokens are never printed at any verbosity.
	// Env: BWSSH_DEBUG. Flags: -d / -debug.
	Debug bool `env:"BWSSH_DEBUG" json:"debug,omitempty"`

	// FolderName is the vault folder whose items are treated as SSH keys.
	// Exactly one folder with this exact name must exist.
	// Env: BWSSH_FOLDER_NAME. Flags: -f / -foldername.
	FolderName string `env:"BWSSH_FOLDER_NAME" json:"foldername,omitempty"`

	// CustomField is the name of the text custom field that declares which
	// attachment holds the private key. Items without it are skipped.
	// Env: BWSSH_CUSTOM_FIELD. Flags: -c / -customfield.
	CustomField string `env:"BWSSH_CUSTOM_FIELD" json:"customfield,omitempty"`

	// PassphraseField is the name of the custom field holding the
	// passphrase of an encrypted key, text or hidden. Optional per item.
	// Env: BWSSH_PASSPHRASE_FIELD. Flags: -p / -passphrasefield.
	PassphraseField string `env:"BWSSH_PASSPHRASE_FIELD" json:"passphrasefield,omitempty"`

	// Session is a pre-existing vault session token. When set, interactive
	// login/unlock is skipped entirely. Never read from the JSON file.
	// Env: BW_SESSION. Flags: -s / -session.
	Session string `env:"BW_SESSION" json:"-"`

	// Lifetime is the maximum duration the agent retains each added key.
	// Values <= 0 (see [NoLifetime]) register keys without an expiry.
	// Env: BWSSH_LIFETIME. Flags: -t / -lifetime.
	Lifetime time.Duration `env:"BWSSH_LIFETIME" json:"lifetime,omitempty"`

	// ServeURL is the base URL of a running `bw serve` REST endpoint. When
	// set, vault operations go over HTTP instead of shelling out to the
	// CLI. Env: BWSSH_SERVE_URL. Flag: -serve.
	ServeURL string `env:"BWSSH_SERVE_URL" json:"serveurl,omitempty"`

	// Clip copies the public key line of each newly registered key to the
	// system clipboard after the run.
	// Env: BWSSH_CLIP. Flag: -clip.
	Clip bool `env:"BWSSH_CLIP" json:"clip,omitempty"`

	// NoPrompt disables all interactive prompting. Operations that would
	// prompt (login, unlock, missing passphrase) fail instead.
	// Env: BWSSH_NO_PROMPT. Flag: -noprompt.
	NoPrompt bool `env:"BWSSH_NO_PROMPT" json:"noprompt,omitempty"`

	// RequireKeys treats an empty resolution set as an error instead of a
	// successful no-op run.
	// Env: BWSSH_REQUIRE_KEYS. Flag: -requirekeys.
	RequireKeys bool `env:"BWSSH_REQUIRE_KEYS" json:"requirekeys,omitempty"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Env: BWSSH_CONFIG. Flag: -config.
	JSONFilePath string `env:"BWSSH_CONFIG" json:"-"`
}

// GetConfig loads, merges, and validates the application configuration from
// all available sources in the following priority order (earlier sources
// win; later sources fill remaining zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *Config or an error if any source fails to load
// or the final config fails validation.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
