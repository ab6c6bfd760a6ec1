package models

// Folder represents a vault folder as returned by the Bitwarden CLI
// (`bw list folders`). Folders are used only to scope which items are
// treated as SSH keys; their contents are never modified by this tool.
type Folder struct {
	// ID is the server-assigned folder UUID. The built-in "No Folder"
	// pseudo-folder has a null ID and decodes to an empty string.
	ID string `json:"id"`

	// Name is the display name of the folder.
	Name string `json:"name"`
}
