package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-autofill-vault/models"
)

// PickerModel lists stored accounts and reports the selected one.
type PickerModel struct {
	records []models.CredentialRecord
	idx     int
}

func NewPickerModel(records []models.CredentialRecord) *PickerModel {
	return &PickerModel{records: records}
}

func (m *PickerModel) Init() tea.Cmd {
	return nil
}

func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.records)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if len(m.records) == 0 {
			return m, nil
		}
		index := m.idx
		return m, func() tea.Msg { return accountPickedMsg{index: index} }
	case key.Matches(keyMsg, keys.esc):
		return m, cancel
	}

	return m, nil
}

func (m *PickerModel) View() string {
	if len(m.records) == 0 {
		return renderPage("ACCOUNTS", "No accounts stored. Add one with `vaultctl add`.", "esc: quit")
	}

	labelWidth := lipgloss.Width("Account")
	for _, r := range m.records {
		if w := lipgloss.Width(fitText(r.AccountLabel, 32)); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %-*s │ %-14s │ %s\n", labelWidth, "Account", "ID", "Container"))
	b.WriteString(strings.Repeat("─", labelWidth+2))
	b.WriteString("─┼────────────────┼──────────\n")

	for i, r := range m.records {
		line := fmt.Sprintf("%-*s │ %-14s │ %s", labelWidth, fitText(r.AccountLabel, 32), fitText(r.AccountID, 14), r.ContainerID)
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	return renderPage("ACCOUNTS", strings.TrimRight(b.String(), "\n"), "enter: autofill │ ↑/↓: navigate │ v: version │ esc: quit")
}
