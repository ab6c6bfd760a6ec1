package config

// defaultConfig returns the built-in defaults. It is always the last
// source in the builder chain, so it only fills fields no other source
// provided.
func defaultConfig() *Config {
	return &Config{
		FolderName:      DefaultFolderName,
		CustomField:     DefaultCustomField,
		PassphraseField: DefaultPassphraseField,
		Lifetime:        DefaultLifetime,
	}
}
