package models

// Vault lock states reported by the Bitwarden CLI and its REST API.
const (
	// StatusUnauthenticated means no account is logged in on this machine.
	StatusUnauthenticated = "unauthenticated"

	// StatusLocked means an account is logged in but the vault is locked
	// and must be unlocked with the master password.
	StatusLocked = "locked"

	// StatusUnlocked means the vault is unlocked and items are readable.
	StatusUnlocked = "unlocked"
)

// VaultStatus describes the state of the local vault as reported by
// `bw status` and by the `bw serve` status endpoint.
type VaultStatus struct {
	// ServerURL is the Bitwarden server the CLI is registered against.
	ServerURL string `json:"serverUrl"`

	// LastSync is the RFC 3339 timestamp of the last vault sync, empty if
	// the vault has never synced.
	LastSync string `json:"lastSync"`

	// UserEmail is the e-mail of the logged-in account, empty when
	// unauthenticated.
	UserEmail string `json:"userEmail"`

	// UserID is the UUID of the logged-in account, empty when
	// unauthenticated.
	UserID string `json:"userId"`

	// Status is one of [StatusUnauthenticated], [StatusLocked], or
	// [StatusUnlocked].
	Status string `json:"status"`
}
