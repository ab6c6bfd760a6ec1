package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d/-debug enable verbose diagnostic output
//	-f/-foldername vault folder to search for SSH keys
//	-c/-customfield custom field naming the private key attachment
//	-p/-passphrasefield custom field holding the key passphrase
//	-s/-session pre-existing vault session token
//	-t/-lifetime agent-side key expiry (e.g. "4h", "2h30m"; 0 disables)
//	-serve base URL of a running `bw serve` REST endpoint
//	-clip copy registered public keys to the clipboard
//	-noprompt fail instead of prompting interactively
//	-requirekeys treat an empty folder as an error
//	-config path to a JSON config file
//
// All flags default to zero values so that the merge step can tell "not
// provided" from "provided"; real defaults are applied by the defaults
// source. The one exception is an explicit zero lifetime, which is folded
// to [NoLifetime] so it survives the merge.
func ParseFlags() *Config {
	var debug bool
	var folderName string
	var customField string
	var passphraseField string
	var session string
	var lifetime time.Duration
	var serveURL string
	var clip bool
	var noPrompt bool
	var requireKeys bool
	var jsonConfigPath string

	flag.BoolVar(&debug, "d", false, "Show debug output")
	flag.BoolVar(&debug, "debug", false, "Show debug output (alias)")
	flag.StringVar(&folderName, "f", "", "Folder name to use to search for SSH keys")
	flag.StringVar(&folderName, "foldername", "", "Folder name to use to search for SSH keys (alias)")
	flag.StringVar(&customField, "c", "", "Custom field name where private key filename is stored")
	flag.StringVar(&customField, "customfield", "", "Custom field name where private key filename is stored (alias)")
	flag.StringVar(&passphraseField, "p", "", "Custom field name where key passphrase is stored")
	flag.StringVar(&passphraseField, "passphrasefield", "", "Custom field name where key passphrase is stored (alias)")
	flag.StringVar(&session, "s", "", "Pre-existing vault session token")
	flag.StringVar(&session, "session", "", "Pre-existing vault session token (alias)")
	flag.DurationVar(&lifetime, "t", 0, "Maximum lifetime of added keys (e.g. 4h, 2h30m; 0 keeps keys until the agent exits)")
	flag.DurationVar(&lifetime, "lifetime", 0, "Maximum lifetime of added keys (alias)")
	flag.StringVar(&serveURL, "serve", "", "Base URL of a running `bw serve` REST endpoint")
	flag.BoolVar(&clip, "clip", false, "Copy public keys of registered keys to the clipboard")
	flag.BoolVar(&noPrompt, "noprompt", false, "Never prompt interactively; fail instead")
	flag.BoolVar(&requireKeys, "requirekeys", false, "Treat an empty key folder as an error")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path")

	flag.Parse()

	// An explicit -t 0 means "no expiry", which must not be refilled with
	// the default lifetime during the merge.
	flag.Visit(func(f *flag.Flag) {
		if (f.Name == "t" || f.Name == "lifetime") && lifetime == 0 {
			lifetime = NoLifetime
		}
	})

	return &Config{
		Debug:           debug,
		FolderName:      folderName,
		CustomField:     customField,
		PassphraseField: passphraseField,
		Session:         session,
		Lifetime:        lifetime,
		ServeURL:        serveURL,
		Clip:            clip,
		NoPrompt:        noPrompt,
		RequireKeys:     requireKeys,
		JSONFilePath:    jsonConfigPath,
	}
}
