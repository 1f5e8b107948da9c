package adapter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-autofill-vault/internal/clock"
	"github.com/MKhiriev/go-autofill-vault/internal/config"
	"github.com/MKhiriev/go-autofill-vault/internal/logger"
)

func surfacesConfig() config.StructuredConfig {
	return config.StructuredConfig{
		Fill: config.Fill{
			Mode:           config.FillModeAgent,
			AgentAddress:   "127.0.0.1:7789",
			AgentTimeout:   time.Second,
			SignInURL:      "https://%s.signin.aws.amazon.com/console",
			ClipboardDelay: time.Second,
		},
	}
}

func TestNewSurfaces_AgentWithLogPrompt(t *testing.T) {
	s, err := NewSurfaces(surfacesConfig(), clock.Real(), logger.Nop())
	require.NoError(t, err)

	assert.IsType(t, &logPrompt{}, s.Prompt)
	assert.IsType(t, &agentFillSurface{}, s.Fill)
	assert.IsType(t, &signInLocator{}, s.Locator)
}

func TestNewSurfaces_ClipboardWithCommandPrompt(t *testing.T) {
	cfg := surfacesConfig()
	cfg.Fill.Mode = config.FillModeClipboard
	cfg.Prompt.Command = "vaultctl unlock"

	s, err := NewSurfaces(cfg, clock.Real(), logger.Nop())
	require.NoError(t, err)

	assert.IsType(t, &commandPrompt{}, s.Prompt)
	assert.IsType(t, &clipboardFillSurface{}, s.Fill)
}

func TestNewSurfaces_UnknownMode(t *testing.T) {
	cfg := surfacesConfig()
	cfg.Fill.Mode = "telepathy"

	_, err := NewSurfaces(cfg, clock.Real(), logger.Nop())
	assert.Error(t, err)
}
