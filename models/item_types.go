package models

// ItemType defines the semantic type of a vault item.
// The numeric values follow the Bitwarden CLI wire format.
type ItemType int

const (
	// ItemTypeLogin represents authentication credentials with an optional
	// URI list and TOTP seed.
	ItemTypeLogin ItemType = 1

	// ItemTypeSecureNote represents free-form secret text. SSH key items
	// are conventionally stored as secure notes with attachments.
	ItemTypeSecureNote ItemType = 2

	// ItemTypeCard represents payment card information.
	ItemTypeCard ItemType = 3

	// ItemTypeIdentity represents personal identity records.
	ItemTypeIdentity ItemType = 4
)

// FieldType defines how a custom field value is interpreted and rendered.
// The numeric values follow the Bitwarden CLI wire format.
type FieldType int

const (
	// FieldTypeText is a plaintext field, visible in the vault UI. The
	// attachment-name field must be a text field to be honored.
	FieldTypeText FieldType = 0

	// FieldTypeHidden is a masked field, revealed on demand. Stored
	// passphrases are honored in both text and hidden fields.
	FieldTypeHidden FieldType = 1

	// FieldTypeBool is a checkbox field.
	FieldTypeBool FieldType = 2

	// FieldTypeLinked is a reference to another item's field.
	FieldTypeLinked FieldType = 3
)
