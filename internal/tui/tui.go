package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-autofill-vault/internal/logger"
	"github.com/MKhiriev/go-autofill-vault/models"
)

const (
	pageUnlock     = "unlock"
	pagePicker     = "picker"
	pageCredential = "credential"
)

type TUI struct {
	buildInfo models.AppBuildInfo
	options   []tea.ProgramOption

	logger *logger.Logger
}

func New(buildInfo models.AppBuildInfo, log *logger.Logger, options ...tea.ProgramOption) *TUI {
	if len(options) == 0 {
		options = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &TUI{buildInfo: buildInfo, options: options, logger: log}
}

// Unlock prompts for the master password until unlock succeeds or the user
// quits.
func (t *TUI) Unlock(ctx context.Context, unlock UnlockFunc) error {
	root, err := t.run(ctx, NewRootModel(map[string]tea.Model{
		pageUnlock: NewUnlockModel(ctx, unlock),
	}, pageUnlock, t.buildInfo))
	if err != nil {
		return err
	}
	if !root.unlocked {
		return ErrUserQuit
	}
	return nil
}

// PickAccount lets the user choose one of records and returns its index.
func (t *TUI) PickAccount(ctx context.Context, records []models.CredentialRecord) (int, error) {
	root, err := t.run(ctx, NewRootModel(map[string]tea.Model{
		pagePicker: NewPickerModel(records),
	}, pagePicker, t.buildInfo))
	if err != nil {
		return -1, err
	}
	if root.picked < 0 {
		return -1, ErrUserQuit
	}
	return root.picked, nil
}

// EditCredential shows the credential form, prefilled from initial when it
// is not nil.
func (t *TUI) EditCredential(ctx context.Context, initial *models.PlainCredential) (models.PlainCredential, error) {
	root, err := t.run(ctx, NewRootModel(map[string]tea.Model{
		pageCredential: NewCredentialFormModel(initial),
	}, pageCredential, t.buildInfo))
	if err != nil {
		return models.PlainCredential{}, err
	}
	if root.credential == nil {
		return models.PlainCredential{}, ErrUserQuit
	}
	return *root.credential, nil
}

func (t *TUI) run(ctx context.Context, root RootModel) (RootModel, error) {
	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)

	finalModel, err := tea.NewProgram(root, options...).Run()
	if err != nil {
		t.logger.Err(err).Msg("tui program failed")
		return RootModel{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return RootModel{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return result, ErrUserQuit
	}
	return result, nil
}
