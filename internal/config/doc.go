// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win; later sources only fill fields that are still
// zero):
//  1. Environment variables (BWSSH_* plus BW_SESSION)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetConfig]. The resulting [Config] is immutable
// by convention: it is built once in main and treated as read-only by every
// component it is handed to.
//
// The vault session token is deliberately never read from the JSON file.
// It is accepted only from the environment or the command line, so that no
// workflow ends up persisting a live session to disk.
package config
