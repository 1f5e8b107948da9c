package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/go-autofill-vault/internal/adapter"
	"github.com/MKhiriev/go-autofill-vault/internal/config"
	"github.com/MKhiriev/go-autofill-vault/internal/logger"
)

// App runs vaultctl commands against the daemon.
type App struct {
	vault adapter.VaultClient
	ui    UI

	in  io.Reader
	out io.Writer

	// noPrompt disables the terminal unlock prompt. Locked requests then
	// wait up to waitTimeout for another surface to unlock the vault.
	noPrompt    bool
	waitTimeout time.Duration

	logger *logger.Logger
}

func NewApp(vault adapter.VaultClient, ui UI, log *logger.Logger) *App {
	return &App{
		vault:       vault,
		ui:          ui,
		in:          os.Stdin,
		out:         os.Stdout,
		waitTimeout: config.DefaultKeyWaitTimeout,
		logger:      log,
	}
}

// withKey runs op once the vault is unlocked. If the daemon still answers
// with [adapter.ErrMasterPasswordNotProvided], the vault is unlocked again
// and op is retried exactly once.
func (a *App) withKey(ctx context.Context, op func(ctx context.Context) error) error {
	if err := a.ensureUnlocked(ctx); err != nil {
		return err
	}

	err := op(ctx)
	if !errors.Is(err, adapter.ErrMasterPasswordNotProvided) {
		return err
	}

	a.logger.Info().Msg("vault is locked, unlocking before retry")
	if err = a.unlock(ctx); err != nil {
		return err
	}

	if err = op(ctx); errors.Is(err, adapter.ErrMasterPasswordNotProvided) {
		return fmt.Errorf("%w: %w", ErrStillLocked, err)
	}
	return err
}

// ensureUnlocked asks for the master password up front so that a request
// does not sit on the daemon's key wait. Without a prompt the daemon's own
// wait is used instead.
func (a *App) ensureUnlocked(ctx context.Context) error {
	if a.noPrompt {
		return nil
	}

	unlocked, err := a.vault.HasKey(ctx)
	if err != nil {
		return fmt.Errorf("check vault state: %w", err)
	}
	if unlocked {
		return nil
	}
	return a.unlock(ctx)
}

func (a *App) unlock(ctx context.Context) error {
	if !a.noPrompt {
		return a.ui.Unlock(ctx, a.vault.Unlock)
	}

	unlocked, err := a.vault.AwaitUnlock(ctx, a.waitTimeout)
	if err != nil {
		return fmt.Errorf("await unlock: %w", err)
	}
	if !unlocked {
		return ErrStillLocked
	}
	return nil
}

// readSecret reads one line from the app's input, without the line ending.
func (a *App) readSecret() (string, error) {
	line, err := bufio.NewReader(a.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
