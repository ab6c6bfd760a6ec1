package config

import "errors"

// Validation errors returned by [Config.validate] when required
// configuration fields are incomplete or invalid.
var (
	// ErrInvalidFolderConfigs indicates an invalid folder setting
	// (for example, an empty or whitespace-only folder name).
	ErrInvalidFolderConfigs = errors.New("invalid folder configuration")
	// ErrInvalidFieldConfigs indicates invalid custom field settings
	// (for example, empty names or the key field colliding with the
	// passphrase field).
	ErrInvalidFieldConfigs = errors.New("invalid field configuration")
	// ErrInvalidServeConfigs indicates an invalid `bw serve` endpoint
	// setting (for example, a URL without an http or https scheme).
	ErrInvalidServeConfigs = errors.New("invalid serve configuration")
)
