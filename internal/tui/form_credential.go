package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-autofill-vault/models"
)

const (
	fieldLabel = iota
	fieldAccountID
	fieldUsername
	fieldPassword
	fieldContainer
	fieldCount
)

var credentialFieldNames = [fieldCount]string{
	"Label    ",
	"Account  ",
	"Username ",
	"Password ",
	"Container",
}

// CredentialFormModel edits one credential. Account id and username are
// required; an empty password is stored as no password.
type CredentialFormModel struct {
	inputs  []textinput.Model
	focus   int
	editing bool
	errMsg  string
}

func NewCredentialFormModel(initial *models.PlainCredential) *CredentialFormModel {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].CharLimit = 1024
	}
	inputs[fieldPassword].EchoMode = textinput.EchoPassword
	inputs[fieldPassword].EchoCharacter = '*'
	inputs[fieldLabel].Focus()

	m := &CredentialFormModel{inputs: inputs}
	if initial == nil {
		return m
	}

	m.editing = true
	m.inputs[fieldLabel].SetValue(initial.AccountLabel)
	m.inputs[fieldAccountID].SetValue(initial.AccountID)
	m.inputs[fieldUsername].SetValue(initial.Username)
	m.inputs[fieldPassword].SetValue(initial.Password)
	m.inputs[fieldContainer].SetValue(initial.ContainerID)
	return m
}

func (m *CredentialFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *CredentialFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, cancel
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			credential := m.credential()
			if credential.AccountID == "" || credential.Username == "" {
				m.errMsg = "Account and username are required"
				return m, nil
			}
			m.errMsg = ""
			return m, func() tea.Msg { return credentialSubmittedMsg{credential: credential} }
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *CredentialFormModel) View() string {
	title := "NEW ACCOUNT"
	if m.editing {
		title = "EDIT ACCOUNT"
	}

	var b strings.Builder
	for i, input := range m.inputs {
		b.WriteString(credentialFieldNames[i])
		b.WriteString(" │ [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: save │ esc: cancel")
}

func (m *CredentialFormModel) credential() models.PlainCredential {
	return models.PlainCredential{
		AccountLabel: strings.TrimSpace(m.inputs[fieldLabel].Value()),
		AccountID:    strings.TrimSpace(m.inputs[fieldAccountID].Value()),
		Username:     strings.TrimSpace(m.inputs[fieldUsername].Value()),
		Password:     m.inputs[fieldPassword].Value(),
		ContainerID:  strings.TrimSpace(m.inputs[fieldContainer].Value()),
	}
}

func (m *CredentialFormModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *CredentialFormModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
