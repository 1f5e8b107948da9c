package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-autofill-vault/internal/clock"
	"github.com/MKhiriev/go-autofill-vault/internal/logger"
	"github.com/MKhiriev/go-autofill-vault/models"
)

// clipboardAccess is the system clipboard as used by clipboardFillSurface.
type clipboardAccess interface {
	Supported() bool
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) Supported() bool            { return !clipboard.Unsupported }
func (systemClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

type clipboardFillSurface struct {
	board  clipboardAccess
	clock  clock.Clock
	delay  time.Duration
	logger *logger.Logger
}

// NewClipboardFillSurface returns a [FillSurface] for setups without a fill
// agent. Present copies the username at once, replaces it with the password
// after delay, and clears the clipboard after another delay unless the user
// copied something else meanwhile.
func NewClipboardFillSurface(delay time.Duration, clk clock.Clock, log *logger.Logger) FillSurface {
	return &clipboardFillSurface{board: systemClipboard{}, clock: clk, delay: delay, logger: log}
}

// Ping always succeeds: the clipboard needs no agent.
func (c *clipboardFillSurface) Ping(context.Context, models.Destination) bool { return true }

// Inject is a no-op.
func (c *clipboardFillSurface) Inject(context.Context, models.Destination) error { return nil }

func (c *clipboardFillSurface) Present(_ context.Context, dest models.Destination, data models.FillData) error {
	if !c.board.Supported() {
		return fmt.Errorf("%w: clipboard is not supported on this system", ErrAgentRejected)
	}

	if err := c.board.WriteAll(data.Username); err != nil {
		return fmt.Errorf("copy username: %w", err)
	}
	c.logger.Info().Str("url", dest.URL).Msg("username copied to clipboard; open the sign-in page")

	password := data.Password
	c.clock.AfterFunc(c.delay, func() {
		if password != "" {
			if err := c.board.WriteAll(password); err != nil {
				c.logger.Err(err).Msg("failed to copy password to clipboard")
				return
			}
			c.logger.Info().Msg("password copied to clipboard")
		}

		c.clock.AfterFunc(c.delay, func() {
			current, err := c.board.ReadAll()
			if err != nil || (current != password && current != data.Username) {
				return
			}
			if err := c.board.WriteAll(""); err != nil {
				c.logger.Err(err).Msg("failed to clear clipboard")
			}
		})
	})

	return nil
}
