// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 João Jacome

package service

import (
	"context"
	"fmt"

	"github.com/joaojacome/bitwarden-ssh-agent/internal/vault"
	"github.com/joaojacome/bitwarden-ssh-agent/models"
)

// Labels shown by the interactive credential prompts.
const (
	labelEmail          = "Email"
	labelMasterPassword = "Master password"
)

// ensureSession leaves the vault client holding a usable session. A
// configured session token is tried first; otherwise the vault status
// decides whether a login or an unlock is needed, with credentials read
// from the prompter. Every failure on this path wraps [vault.ErrAuth].
func (l *keyLoader) ensureSession(ctx context.Context) error {
	if l.cfg.Session != "" {
		l.vault.SetSession(l.cfg.Session)
	}

	status, err := l.vault.Status(ctx)
	if err != nil {
		return err
	}

	switch status.Status {
	case models.StatusUnlocked:
		l.log.Debug().Str("user", status.UserEmail).Msg("vault already unlocked")
		return nil

	case models.StatusLocked:
		l.log.Debug().Str("user", status.UserEmail).Msg("vault locked, unlocking")

		password, err := l.prompt.Secret(ctx, labelMasterPassword)
		if err != nil {
			return fmt.Errorf("%w: master password: %v", vault.ErrAuth, err)
		}

		return l.vault.Unlock(ctx, password)

	case models.StatusUnauthenticated:
		l.log.Debug().Msg("not logged in, starting login")

		email, err := l.prompt.Input(ctx, labelEmail)
		if err != nil {
			return fmt.Errorf("%w: email: %v", vault.ErrAuth, err)
		}

		password, err := l.prompt.Secret(ctx, labelMasterPassword)
		if err != nil {
			return fmt.Errorf("%w: master password: %v", vault.ErrAuth, err)
		}

		return l.vault.Login(ctx, email, password)

	default:
		return fmt.Errorf("%w: unexpected vault status %q", vault.ErrAuth, status.Status)
	}
}
