package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfig_Validate tests the validate method of Config
func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			FolderName:      DefaultFolderName,
			CustomField:     DefaultCustomField,
			PassphraseField: DefaultPassphraseField,
			Lifetime:        DefaultLifetime,
		}
	}

	tests := []struct {
		name      string
		mutate    func(cfg *Config)
		expectErr error
	}{
		{
			name:      "defaults are valid",
			mutate:    func(cfg *Config) {},
			expectErr: nil,
		},
		{
			name:      "empty folder name",
			mutate:    func(cfg *Config) { cfg.FolderName = "" },
			expectErr: ErrInvalidFolderConfigs,
		},
		{
			name:      "whitespace folder name",
			mutate:    func(cfg *Config) { cfg.FolderName = "   " },
			expectErr: ErrInvalidFolderConfigs,
		},
		{
			name:      "empty custom field",
			mutate:    func(cfg *Config) { cfg.CustomField = "" },
			expectErr: ErrInvalidFieldConfigs,
		},
		{
			name:      "empty passphrase field",
			mutate:    func(cfg *Config) { cfg.PassphraseField = "" },
			expectErr: ErrInvalidFieldConfigs,
		},
		{
			name: "custom field collides with passphrase field",
			mutate: func(cfg *Config) {
				cfg.CustomField = "same"
				cfg.PassphraseField = "same"
			},
			expectErr: ErrInvalidFieldConfigs,
		},
		{
			name:      "serve url without scheme",
			mutate:    func(cfg *Config) { cfg.ServeURL = "localhost:8087" },
			expectErr: ErrInvalidServeConfigs,
		},
		{
			name:      "serve url with http scheme",
			mutate:    func(cfg *Config) { cfg.ServeURL = "http://localhost:8087" },
			expectErr: nil,
		},
		{
			name:      "serve url with https scheme",
			mutate:    func(cfg *Config) { cfg.ServeURL = "https://vault.internal:8087" },
			expectErr: nil,
		},
		{
			name:      "no lifetime is valid",
			mutate:    func(cfg *Config) { cfg.Lifetime = NoLifetime },
			expectErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.expectErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
