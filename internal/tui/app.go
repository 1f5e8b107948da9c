package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-autofill-vault/models"
)

// cancelledMsg is sent by a page when the user backs out of it.
type cancelledMsg struct{}

func cancel() tea.Msg { return cancelledMsg{} }

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit and the build info overlay
// 3) handles NavigateTo messages
// 4) finishes the program when a page produces its result
// 5) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	quitByUser bool
	unlocked   bool
	picked     int
	credential *models.PlainCredential
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		picked:    -1,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.version) && r.isPickerPage():
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	// Cross-page navigation.
	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if nav.Payload != nil {
			return r, func() tea.Msg { return nav.Payload }
		}
		return r, r.current.Init()
	}

	// Finish the flow once a page has its result.
	switch result := msg.(type) {
	case cancelledMsg:
		r.quitByUser = true
		return r, tea.Quit
	case unlockResultMsg:
		if result.err == nil {
			r.unlocked = true
			return r, tea.Quit
		}
	case accountPickedMsg:
		r.picked = result.index
		return r, tea.Quit
	case credentialSubmittedMsg:
		credential := result.credential
		r.credential = &credential
		return r, tea.Quit
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("VAULTCTL", "", "")
	}
	return r.current.View()
}

func (r RootModel) isPickerPage() bool {
	_, ok := r.current.(*PickerModel)
	return ok
}
