package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-autofill-vault/internal/clock"
	"github.com/MKhiriev/go-autofill-vault/internal/config"
	"github.com/MKhiriev/go-autofill-vault/internal/logger"
)

// Surfaces bundles the collaborators the daemon drives.
type Surfaces struct {
	Prompt  PromptSurface
	Fill    FillSurface
	Locator Locator
}

// NewSurfaces builds the prompt, fill and locator adapters selected by cfg.
func NewSurfaces(cfg config.StructuredConfig, clk clock.Clock, log *logger.Logger) (*Surfaces, error) {
	var (
		prompt PromptSurface
		fill   FillSurface
		err    error
	)

	if cfg.Prompt.Command != "" {
		if prompt, err = NewCommandPrompt(cfg.Prompt.Command, log); err != nil {
			return nil, err
		}
	} else {
		prompt = NewLogPrompt(log)
	}

	switch cfg.Fill.Mode {
	case config.FillModeClipboard:
		fill = NewClipboardFillSurface(cfg.Fill.ClipboardDelay, clk, log)
	case config.FillModeAgent, "":
		if fill, err = NewAgentFillSurface(cfg.Fill.AgentAddress, cfg.Fill.AgentTimeout, log); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown fill mode %q", cfg.Fill.Mode)
	}

	log.Info().Str("fill_mode", cfg.Fill.Mode).Bool("prompt_command", cfg.Prompt.Command != "").Msg("surfaces configured")

	return &Surfaces{
		Prompt:  prompt,
		Fill:    fill,
		Locator: NewSignInLocator(cfg.Fill.SignInURL),
	}, nil
}
