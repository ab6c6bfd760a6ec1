// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 João Jacome

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/joaojacome/bitwarden-ssh-agent/internal/config"
	"github.com/joaojacome/bitwarden-ssh-agent/internal/keycrypt"
	"github.com/joaojacome/bitwarden-ssh-agent/internal/logger"
	"github.com/joaojacome/bitwarden-ssh-agent/models"
)

// passphraseAttempts bounds interactive passphrase prompts per key, the
// same number of tries ssh-add gives.
const passphraseAttempts = 3

type keyLoader struct {
	vault  VaultClient
	agent  KeyAgent
	prompt Prompter
	cfg    *config.Config
	log    *logger.Logger
}

// NewKeyLoader wires the pipeline over a vault client, an agent client,
// and a prompt provider. The configuration is read-only for the lifetime
// of the loader.
func NewKeyLoader(vaultClient VaultClient, keyAgent KeyAgent, prompter Prompter, cfg *config.Config, log *logger.Logger) KeyLoader {
	return &keyLoader{
		vault:  vaultClient,
		agent:  keyAgent,
		prompt: prompter,
		cfg:    cfg,
		log:    log,
	}
}

// Run executes one pipeline pass: ensure a session, locate the configured
// folder, list and resolve its items, then fetch, decrypt, and register
// each key in listing order. Per-key failures land in the report; only
// session and vault-listing failures abort the run.
func (l *keyLoader) Run(ctx context.Context) (models.Report, error) {
	if err := l.ensureSession(ctx); err != nil {
		return models.Report{}, err
	}

	folderID, err := l.findFolder(ctx)
	if err != nil {
		return models.Report{}, err
	}

	items, err := l.vault.ListItems(ctx, folderID)
	if err != nil {
		return models.Report{}, err
	}
	l.log.Debug().Int("items", len(items)).Msg("folder listed")

	records, skipped := l.resolveRecords(folderID, items)
	report := models.Report{Skipped: skipped}

	if len(records) == 0 {
		if l.cfg.RequireKeys {
			return report, fmt.Errorf("%w in folder %q", ErrNoKeys, l.cfg.FolderName)
		}
		l.log.Info().Str("folder", l.cfg.FolderName).Msg("no ssh keys to register")
		return report, nil
	}

	loaded := l.loadedFingerprints(ctx)

	for _, record := range records {
		report.Outcomes = append(report.Outcomes, l.processRecord(ctx, record, loaded))
	}

	return report, nil
}

// findFolder resolves the configured folder name to its ID. The server
// search may return fuzzy matches, so the name is compared exactly here;
// anything other than exactly one match is an error.
func (l *keyLoader) findFolder(ctx context.Context) (string, error) {
	folders, err := l.vault.ListFolders(ctx, l.cfg.FolderName)
	if err != nil {
		return "", err
	}

	id := ""
	matches := 0
	for _, folder := range folders {
		if folder.Name == l.cfg.FolderName {
			id = folder.ID
			matches++
		}
	}

	switch matches {
	case 1:
		l.log.Debug().Str("folder", l.cfg.FolderName).Str("id", id).Msg("folder resolved")
		return id, nil
	case 0:
		return "", fmt.Errorf("%w: %q", ErrFolderNotFound, l.cfg.FolderName)
	default:
		return "", fmt.Errorf("%w: %d folders named %q", ErrAmbiguousFolder, matches, l.cfg.FolderName)
	}
}

// loadedFingerprints returns the fingerprints the agent already holds.
// A failure here only disables the duplicate pre-check; registration
// problems surface per key later.
func (l *keyLoader) loadedFingerprints(ctx context.Context) map[string]bool {
	fingerprints, err := l.agent.Fingerprints(ctx)
	if err != nil {
		l.log.Debug().Err(err).Msg("cannot list agent keys, duplicate check disabled")
		return nil
	}

	loaded := make(map[string]bool, len(fingerprints))
	for _, fingerprint := range fingerprints {
		loaded[fingerprint] = true
	}
	return loaded
}

// processRecord drives one record to its terminal state. The key material
// stays in memory for the whole journey and unencrypted keys reach the
// agent byte-for-byte as fetched.
func (l *keyLoader) processRecord(ctx context.Context, record models.KeyRecord, loaded map[string]bool) models.Outcome {
	if record.AttachmentID == "" {
		l.log.Warn().
			Str("item", record.ItemName).
			Str("filename", record.Filename).
			Msg("no attachment with the declared file name")
		return models.FailedOutcome(record, models.StageFetch, fmt.Sprintf("no attachment named %q", record.Filename))
	}

	material, err := l.vault.FetchAttachment(ctx, record.ItemID, record.AttachmentID)
	if err != nil {
		l.log.Warn().Err(err).Str("item", record.ItemName).Msg("attachment download failed")
		return models.FailedOutcome(record, models.StageFetch, err.Error())
	}
	l.log.Debug().
		Str("item", record.ItemName).
		Str("state", models.StateFetched.String()).
		Int("bytes", len(material)).
		Msg("attachment downloaded")

	// OpenSSH-format keys expose their public half without the
	// passphrase, so a key the agent already holds is recognized before
	// any decryption or prompting happens.
	fingerprint, fpErr := keycrypt.Fingerprint(material)
	if fpErr == nil && loaded[fingerprint] {
		l.log.Info().
			Str("item", record.ItemName).
			Str("fingerprint", fingerprint).
			Msg("key already present in agent")

		outcome := models.RegisteredOutcome(record, fingerprint)
		outcome.AlreadyLoaded = true
		return outcome
	}

	encrypted, err := keycrypt.IsEncrypted(material)
	if err != nil {
		l.log.Warn().Err(err).Str("item", record.ItemName).Msg("attachment is not a private key")
		return models.FailedOutcome(record, models.StageDecrypt, err.Error())
	}

	state := models.StatePassthrough
	if encrypted {
		material, err = l.decryptRecord(ctx, record, material)
		if err != nil {
			l.log.Warn().Err(err).Str("item", record.ItemName).Msg("decryption failed")
			return models.FailedOutcome(record, models.StageDecrypt, err.Error())
		}
		state = models.StateDecrypted
	}
	l.log.Debug().Str("item", record.ItemName).Str("state", state.String()).Msg("key material ready")

	if err := l.agent.Add(ctx, material, l.cfg.Lifetime); err != nil {
		l.log.Warn().Err(err).Str("item", record.ItemName).Msg("agent rejected key")
		return models.FailedOutcome(record, models.StageRegister, err.Error())
	}

	if fpErr != nil {
		fingerprint, _ = keycrypt.Fingerprint(material)
	}
	l.log.Info().
		Str("item", record.ItemName).
		Str("fingerprint", fingerprint).
		Msg("key registered")

	outcome := models.RegisteredOutcome(record, fingerprint)
	outcome.AuthorizedKey, _ = keycrypt.AuthorizedKey(material, record.ItemName)
	return outcome
}

// decryptRecord produces plaintext key material for an encrypted key. The
// stored passphrase is tried first; a wrong or missing one falls back to
// a bounded number of interactive prompts.
func (l *keyLoader) decryptRecord(ctx context.Context, record models.KeyRecord, material []byte) ([]byte, error) {
	if record.HasPassphrase {
		decrypted, err := keycrypt.Decrypt(material, []byte(record.Passphrase))
		if err == nil {
			l.log.Debug().Str("item", record.ItemName).Msg("decrypted with stored passphrase")
			return decrypted, nil
		}
		if !errors.Is(err, keycrypt.ErrWrongPassphrase) {
			return nil, err
		}
		l.log.Warn().Str("item", record.ItemName).Msg("stored passphrase rejected")
	}

	for attempt := 0; attempt < passphraseAttempts; attempt++ {
		passphrase, err := l.prompt.Secret(ctx, fmt.Sprintf("Passphrase for %s", record.ItemName))
		if err != nil {
			return nil, err
		}

		decrypted, err := keycrypt.Decrypt(material, []byte(passphrase))
		if err == nil {
			return decrypted, nil
		}
		if !errors.Is(err, keycrypt.ErrWrongPassphrase) {
			return nil, err
		}
		l.log.Warn().Str("item", record.ItemName).Msg("wrong passphrase")
	}

	return nil, keycrypt.ErrWrongPassphrase
}
