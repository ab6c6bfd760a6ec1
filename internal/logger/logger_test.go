package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger(false)
	require.NotNil(t, l)
}

// TestNewLogger_DefaultLevelIsInfo verifies that without debug the global
// zerolog level is Info.
func TestNewLogger_DefaultLevelIsInfo(t *testing.T) {
	NewLogger(false)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

// TestNewLogger_DebugLevel verifies that debug mode lowers the global level.
func TestNewLogger_DebugLevel(t *testing.T) {
	NewLogger(true)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

// TestNewLogger_CallerFieldName verifies that the caller field is named "func".
func TestNewLogger_CallerFieldName(t *testing.T) {
	NewLogger(true) // sets zerolog.CallerFieldName as a side-effect
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

// TestNewLogger_SuppressesDebugByDefault verifies that debug entries are
// dropped when debug mode is off.
func TestNewLogger_SuppressesDebugByDefault(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(false)
	l.Logger = l.Output(&buf)

	l.Debug().Msg("should be dropped")

	assert.Empty(t, buf.String())
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestWithComponent_AddsField verifies that the child logger carries the
// component field on every entry.
func TestWithComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(false)
	l.Logger = l.Output(&buf)

	child := l.WithComponent("vault")
	child.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "vault", entry["component"])
}

// TestWithComponent_IsIndependent verifies that the child logger is a
// distinct instance from the parent.
func TestWithComponent_IsIndependent(t *testing.T) {
	parent := NewLogger(false)
	child := parent.WithComponent("agent")
	assert.NotSame(t, parent, child)
}
