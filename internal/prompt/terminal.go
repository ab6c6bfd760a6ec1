// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 João Jacome

// Package prompt collects the interactive input providers used when a key
// needs a passphrase or the vault asks for credentials. The terminal
// provider renders on stderr so that prompts never mix with pipeline
// output on stdout.
package prompt

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// Terminal asks the user for input through a Bubble Tea prompt on the
// controlling terminal. Secret values are read with masked echo.
type Terminal struct{}

// NewTerminal creates a [Terminal] provider.
func NewTerminal() *Terminal {
	return &Terminal{}
}

// Input reads a single visible line, e.g. an account email.
func (p *Terminal) Input(ctx context.Context, label string) (string, error) {
	return p.ask(ctx, label, false)
}

// Secret reads a single line with masked echo, e.g. a master password or
// a key passphrase. The value is returned to the caller and never logged.
func (p *Terminal) Secret(ctx context.Context, label string) (string, error) {
	return p.ask(ctx, label, true)
}

func (p *Terminal) ask(ctx context.Context, label string, secret bool) (string, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return "", ErrNotInteractive
	}

	program := tea.NewProgram(
		newAskModel(label, secret),
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
	)

	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	model, ok := final.(*askModel)
	if !ok || model.aborted {
		return "", ErrAborted
	}

	return model.input.Value(), nil
}

// askModel is the Bubble Tea model behind [Terminal]. It renders a single
// text input and quits on enter or esc.
type askModel struct {
	label   string
	input   textinput.Model
	done    bool
	aborted bool
}

func newAskModel(label string, secret bool) *askModel {
	input := textinput.New()
	input.CharLimit = 256
	input.Width = 40
	input.Focus()
	if secret {
		input.EchoMode = textinput.EchoPassword
		input.EchoCharacter = '*'
	}

	return &askModel{label: label, input: input}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *askModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Enter submits the current value, esc and
// ctrl+c abort the prompt.
func (m *askModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

// View implements [tea.Model].
func (m *askModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	return labelStyle.Render(m.label+":") + " " + m.input.View() + "\n"
}
