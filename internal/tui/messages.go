package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-autofill-vault/models"
)

// NavigateTo switches the root model to another page. Payload, when set, is
// delivered to the new page as its first message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// unlockResultMsg reports the outcome of a submitted master password.
type unlockResultMsg struct {
	err error
}

// accountPickedMsg carries the index of the chosen credential record.
type accountPickedMsg struct {
	index int
}

// credentialSubmittedMsg carries a completed credential form.
type credentialSubmittedMsg struct {
	credential models.PlainCredential
}
