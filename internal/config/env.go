// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 João Jacome

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` tags defined on
// [Config].
//
// BW_SESSION is read under its vault-CLI name rather than a BWSSH_ one, so
// a session exported for `bw` itself is picked up without re-exporting.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
