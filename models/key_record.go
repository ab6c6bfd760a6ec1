// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 João Jacome

package models

// KeyRecord describes one SSH key scheduled for registration, resolved from
// a qualifying vault item. Records are immutable once constructed and are
// processed strictly in resolution order.
type KeyRecord struct {
	// ItemID is the UUID of the vault item the key was resolved from.
	ItemID string

	// ItemName is the display name of the vault item, used in log and
	// summary output.
	ItemName string

	// Filename is the attachment file name declared by the item's
	// private-key custom field.
	Filename string

	// AttachmentID is the identifier of the attachment whose FileName
	// matches Filename, or empty if no attachment matched. An empty
	// AttachmentID fails the record at the fetch stage, not at resolution.
	AttachmentID string

	// Passphrase is the decryption passphrase stored in the item's
	// passphrase custom field. Empty when no passphrase was stored.
	Passphrase string

	// HasPassphrase reports whether a non-empty passphrase field was found.
	// When false and the key material turns out to be encrypted, the
	// pipeline falls back to interactive prompting.
	HasPassphrase bool
}
