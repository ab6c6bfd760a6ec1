// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 João Jacome

package models

// Item represents a single vault item as returned by the Bitwarden CLI
// (`bw list items`). Only the fields consumed by the key-loading pipeline
// are decoded; the rest of the JSON document is ignored.
type Item struct {
	// ID is the server-assigned item UUID.
	ID string `json:"id"`

	// FolderID is the UUID of the folder containing the item, or empty if
	// the item is not in any folder.
	FolderID string `json:"folderId"`

	// Type defines the semantic type of the item (login, secure note, ...).
	Type ItemType `json:"type"`

	// Name is the display name of the item, used in log and summary output.
	Name string `json:"name"`

	// Fields contains the user-defined custom fields attached to the item.
	Fields []Field `json:"fields,omitempty"`

	// Attachments lists the files attached to the item.
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Field represents a user-defined custom field attached to an [Item].
// The pipeline reads two well-known fields per item: one naming the
// attachment that holds the private key and one holding its passphrase.
type Field struct {
	// Name is the field label as shown in the vault UI.
	Name string `json:"name"`

	// Value is the plaintext field value.
	Value string `json:"value"`

	// Type defines how the value is rendered in the vault UI.
	Type FieldType `json:"type"`
}

// Attachment represents a file attached to an [Item]. The private key
// material itself is stored as an attachment and fetched by ID.
type Attachment struct {
	// ID is the server-assigned attachment identifier.
	ID string `json:"id"`

	// FileName is the original name of the attached file. Custom fields
	// reference attachments by this name.
	FileName string `json:"fileName"`

	// Size is the attachment size in bytes, encoded as a string by the CLI.
	Size string `json:"size"`

	// SizeName is the human-readable size (e.g. "1.7 KB").
	SizeName string `json:"sizeName"`

	// URL is the download URL of the encrypted attachment blob.
	URL string `json:"url"`
}
