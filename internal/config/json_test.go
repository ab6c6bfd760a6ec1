package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"debug": true,
		"foldername": "work-keys",
		"customfield": "key-file",
		"passphrasefield": "key-pass",
		"lifetime": "2h",
		"serveurl": "http://localhost:8087",
		"clip": true,
		"noprompt": true,
		"requirekeys": true
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "work-keys", cfg.FolderName)
	assert.Equal(t, "key-file", cfg.CustomField)
	assert.Equal(t, "key-pass", cfg.PassphraseField)
	assert.Equal(t, 2*time.Hour, cfg.Lifetime)
	assert.Equal(t, "http://localhost:8087", cfg.ServeURL)
	assert.True(t, cfg.Clip)
	assert.True(t, cfg.NoPrompt)
	assert.True(t, cfg.RequireKeys)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad_duration.json")

	jsonBody := `{ "lifetime": "not-a-duration" }`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

// TestParseJSON_NumericDuration verifies that a raw number is accepted as
// nanoseconds, matching encoding/json's default for time.Duration.
func TestParseJSON_NumericDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "numeric_duration.json")

	jsonBody := `{ "lifetime": 3600000000000 }`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, time.Hour, cfg.Lifetime)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, Config{}, *cfg)
}

func TestParseJSON_PartialObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "partial.json")

	jsonBody := `{ "foldername": "partial-folder" }`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "partial-folder", cfg.FolderName)
	assert.Empty(t, cfg.CustomField)
	assert.Empty(t, cfg.PassphraseField)
	assert.Zero(t, cfg.Lifetime)
}

// TestParseJSON_IgnoresSessionAndPath verifies that session tokens and
// config file paths present in the JSON body never make it into the config.
func TestParseJSON_IgnoresSessionAndPath(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "session.json")

	jsonBody := `{
		"session": "leaked-token",
		"config": "/elsewhere.json",
		"foldername": "work-keys"
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Empty(t, cfg.Session)
	assert.Empty(t, cfg.JSONFilePath)
	assert.Equal(t, "work-keys", cfg.FolderName)
}
