// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// UnlockFunc submits a master password to the vault.
type UnlockFunc func(ctx context.Context, password string) error

// UnlockModel is the Bubble Tea model of the master password prompt. It
// renders one masked input and submits it asynchronously on enter. A
// successful submission produces an [unlockResultMsg] that [RootModel]
// turns into program exit; a failure is shown and the input is cleared.
type UnlockModel struct {
	ctx    context.Context
	unlock UnlockFunc

	input      textinput.Model
	submitting bool
	attempts   int
	errMsg     string
}

// NewUnlockModel creates an [UnlockModel] with a focused, masked input.
func NewUnlockModel(ctx context.Context, unlock UnlockFunc) *UnlockModel {
	input := textinput.New()
	input.Placeholder = "master password"
	input.CharLimit = 1024
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return &UnlockModel{ctx: ctx, unlock: unlock, input: input}
}

// Init implements [tea.Model].
func (m *UnlockModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [unlockResultMsg] with an error: shows it and clears the input.
//   - esc: cancels the prompt.
//   - enter: submits a non-empty password.
//
// All other key events go to the input.
func (m *UnlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(unlockResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.attempts++
			m.errMsg = humanizeDaemonUnavailableError(result.err)
			m.input.Reset()
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, cancel
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			password := m.input.Value()
			if strings.TrimSpace(password) == "" {
				m.errMsg = "Master password is required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdUnlock(password)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *UnlockModel) View() string {
	var b strings.Builder
	b.WriteString("A vault request is waiting for the master password.\n\n")
	b.WriteString("Password │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Unlocking...]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("UNLOCK VAULT", strings.TrimRight(b.String(), "\n"), "enter: unlock │ esc: cancel")
}

func (m *UnlockModel) cmdUnlock(password string) tea.Cmd {
	ctx := m.ctx
	unlock := m.unlock

	return func() tea.Msg {
		return unlockResultMsg{err: unlock(ctx, password)}
	}
}
