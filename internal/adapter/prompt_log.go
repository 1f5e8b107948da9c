package adapter

import (
	"context"

	"github.com/MKhiriev/go-autofill-vault/internal/logger"
)

type logPrompt struct {
	logger *logger.Logger
}

// NewLogPrompt returns a [PromptSurface] that only logs. Used when no
// prompt command is configured: the user runs "vaultctl unlock" manually.
func NewLogPrompt(log *logger.Logger) PromptSurface {
	return &logPrompt{logger: log}
}

func (p *logPrompt) Open(context.Context) error {
	p.logger.Warn().Msg("master password required: run `vaultctl unlock`")
	return nil
}

func (p *logPrompt) Close(context.Context) error {
	p.logger.Info().Msg("vault unlocked")
	return nil
}
