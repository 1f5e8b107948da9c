package adapter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/MKhiriev/go-autofill-vault/internal/logger"
)

type commandPrompt struct {
	name string
	args []string

	mu  sync.Mutex
	cmd *exec.Cmd

	logger *logger.Logger
}

// NewCommandPrompt returns a [PromptSurface] that runs commandLine (split on
// whitespace) when a master password is needed, e.g. "vaultctl unlock"
// inside a terminal emulator. At most one instance runs at a time.
func NewCommandPrompt(commandLine string, log *logger.Logger) (PromptSurface, error) {
	fields := strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil, ErrEmptyPromptCommand
	}

	return &commandPrompt{name: fields[0], args: fields[1:], logger: log}, nil
}

func (p *commandPrompt) Open(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cmd != nil {
		return nil
	}

	cmd := exec.Command(p.name, p.args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		p.logger.Err(err).Str("command", p.name).Msg("failed to start unlock prompt")
		return fmt.Errorf("start prompt command: %w", err)
	}
	p.cmd = cmd
	p.logger.Info().Int("pid", cmd.Process.Pid).Msg("unlock prompt opened")

	go p.reap(cmd)
	return nil
}

// reap waits for cmd and forgets it so the next Open starts a new one.
func (p *commandPrompt) reap(cmd *exec.Cmd) {
	err := cmd.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cmd == cmd {
		p.cmd = nil
	}
	p.logger.Debug().Err(err).Int("pid", cmd.Process.Pid).Msg("unlock prompt exited")
}

func (p *commandPrompt) Close(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cmd == nil {
		return nil
	}

	cmd := p.cmd
	p.cmd = nil
	if err := cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("stop prompt command: %w", err)
	}
	return nil
}

// running reports whether a prompt process is currently tracked.
func (p *commandPrompt) running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cmd != nil
}
