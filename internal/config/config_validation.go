// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 João Jacome

package config

import "strings"

// validate checks that the final merged [Config] satisfies all application
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *Config) validate() error {
	if strings.TrimSpace(cfg.FolderName) == "" {
		return ErrInvalidFolderConfigs
	}

	if strings.TrimSpace(cfg.CustomField) == "" || strings.TrimSpace(cfg.PassphraseField) == "" {
		return ErrInvalidFieldConfigs
	}

	if cfg.CustomField == cfg.PassphraseField {
		return ErrInvalidFieldConfigs
	}

	if cfg.ServeURL != "" &&
		!strings.HasPrefix(cfg.ServeURL, "http://") &&
		!strings.HasPrefix(cfg.ServeURL, "https://") {
		return ErrInvalidServeConfigs
	}

	return nil
}
