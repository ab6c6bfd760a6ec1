// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 João Jacome

// Package logger provides a thin wrapper around zerolog.Logger configured
// for a command-line tool: human-readable console output on stderr, so that
// stdout stays free for the shell.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
package logger

import (
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger writing console-formatted entries to
// os.Stderr.
//
// The logger is configured with:
//   - global log level Info, or Debug when debug is true;
//   - a "ts" timestamp on every entry;
//   - a "func" caller field carrying the short function name, emitted only
//     at debug verbosity;
//   - colored output only when stderr is a terminal.
func NewLogger(debug bool) *Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		name := runtime.FuncForPC(pc).Name()
		return name[strings.LastIndexByte(name, '/')+1:]
	}
	zerolog.CallerFieldName = "func"

	out := zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	}

	ctx := zerolog.New(out).With().Timestamp()
	if debug {
		ctx = ctx.Caller()
	}

	return &Logger{ctx.Logger()}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithComponent returns a child *Logger carrying a "component" field, so
// entries from different pipeline parts can be told apart at debug level.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{l.With().Str("component", name).Logger()}
}
