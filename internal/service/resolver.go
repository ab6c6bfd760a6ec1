// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 João Jacome

package service

import "github.com/joaojacome/bitwarden-ssh-agent/models"

// resolveRecords builds one [models.KeyRecord] per qualifying item,
// preserving the vault listing order. Items without the configured
// attachment-name field are counted as skipped, never failed. The listing
// is already folder-scoped; items claiming another folder are dropped
// anyway in case the vault CLI ever returns strays.
func (l *keyLoader) resolveRecords(folderID string, items []models.Item) ([]models.KeyRecord, int) {
	records := make([]models.KeyRecord, 0, len(items))
	skipped := 0

	for _, item := range items {
		if item.FolderID != folderID {
			l.log.Debug().Str("item", item.Name).Str("folder", item.FolderID).Msg("item outside the requested folder")
			continue
		}

		filename, ok := attachmentNameField(item, l.cfg.CustomField)
		if !ok {
			skipped++
			l.log.Warn().
				Str("item", item.Name).
				Str("field", l.cfg.CustomField).
				Msg("item has no attachment-name field, skipping")
			continue
		}

		record := models.KeyRecord{
			ItemID:       item.ID,
			ItemName:     item.Name,
			Filename:     filename,
			AttachmentID: attachmentIDByName(item, filename),
		}
		record.Passphrase, record.HasPassphrase = passphraseField(item, l.cfg.PassphraseField)

		l.log.Debug().
			Str("item", item.Name).
			Str("filename", filename).
			Bool("stored_passphrase", record.HasPassphrase).
			Msg("resolved key record")

		records = append(records, record)
	}

	return records, skipped
}

// attachmentNameField returns the value of the text field declaring which
// attachment holds the private key. Only text fields qualify.
func attachmentNameField(item models.Item, name string) (string, bool) {
	for _, field := range item.Fields {
		if field.Name == name && field.Type == models.FieldTypeText && field.Value != "" {
			return field.Value, true
		}
	}
	return "", false
}

// passphraseField returns the stored passphrase for the item's key.
// Both text and hidden fields qualify, hidden being the usual choice for
// secrets in the vault UI.
func passphraseField(item models.Item, name string) (string, bool) {
	for _, field := range item.Fields {
		if field.Name != name || field.Value == "" {
			continue
		}
		if field.Type == models.FieldTypeText || field.Type == models.FieldTypeHidden {
			return field.Value, true
		}
	}
	return "", false
}

// attachmentIDByName returns the ID of the attachment whose file name
// matches exactly, or empty when none does.
func attachmentIDByName(item models.Item, filename string) string {
	for _, attachment := range item.Attachments {
		if attachment.FileName == filename {
			return attachment.ID
		}
	}
	return ""
}
