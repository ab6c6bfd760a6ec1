// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 João Jacome

// Package keycrypt inspects, decrypts, and fingerprints SSH private keys.
//
// All functions operate on in-memory byte slices. Key material is never
// written to disk and never appears in error values; errors describe what
// went wrong, not what was being processed.
package keycrypt

import (
	"crypto/ed25519"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/ssh"
)

// IsEncrypted reports whether data is a private key protected by a
// passphrase. Data that does not parse as a private key at all yields
// [ErrNotAKey].
func IsEncrypted(data []byte) (bool, error) {
	_, err := ssh.ParseRawPrivateKey(data)
	if err == nil {
		return false, nil
	}

	var missing *ssh.PassphraseMissingError
	if errors.As(err, &missing) {
		return true, nil
	}
	return false, fmt.Errorf("%w: %v", ErrNotAKey, err)
}

// Decrypt decrypts a passphrase-protected private key and re-encodes it as
// an unencrypted OpenSSH PEM block, ready to be piped to ssh-add.
func Decrypt(data, passphrase []byte) ([]byte, error) {
	key, err := ssh.ParseRawPrivateKeyWithPassphrase(data, passphrase)
	if err != nil {
		if errors.Is(err, x509.IncorrectPasswordError) {
			return nil, ErrWrongPassphrase
		}
		return nil, fmt.Errorf("%w: %v", ErrNotAKey, err)
	}

	// ParseRawPrivateKey returns *ed25519.PrivateKey, but the marshaller
	// only accepts the value type.
	if k, ok := key.(*ed25519.PrivateKey); ok {
		key = *k
	}

	block, err := ssh.MarshalPrivateKey(key, "")
	if err != nil {
		return nil, fmt.Errorf("encode decrypted key: %w", err)
	}
	return pem.EncodeToMemory(block), nil
}

// Fingerprint computes the SHA256 fingerprint of the key's public half,
// in the format ssh-add -l prints. Keys in the OpenSSH format store the
// public half unencrypted, so encrypted keys can be fingerprinted without
// their passphrase.
func Fingerprint(data []byte) (string, error) {
	key, err := ssh.ParseRawPrivateKey(data)
	if err != nil {
		var missing *ssh.PassphraseMissingError
		if errors.As(err, &missing) && missing.PublicKey != nil {
			return ssh.FingerprintSHA256(missing.PublicKey), nil
		}
		return "", fmt.Errorf("%w: %v", ErrNotAKey, err)
	}

	signer, err := ssh.NewSignerFromKey(key)
	if err != nil {
		return "", fmt.Errorf("derive public key: %w", err)
	}
	return ssh.FingerprintSHA256(signer.PublicKey()), nil
}

// AuthorizedKey renders the public half of a plain private key as a single
// authorized_keys line. A non-empty comment is appended to the line.
func AuthorizedKey(data []byte, comment string) (string, error) {
	signer, err := signerFor(data)
	if err != nil {
		return "", err
	}

	line := strings.TrimSpace(string(ssh.MarshalAuthorizedKey(signer.PublicKey())))
	if comment != "" {
		line += " " + comment
	}
	return line, nil
}

func signerFor(data []byte) (ssh.Signer, error) {
	key, err := ssh.ParseRawPrivateKey(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAKey, err)
	}

	signer, err := ssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("derive public key: %w", err)
	}
	return signer, nil
}
