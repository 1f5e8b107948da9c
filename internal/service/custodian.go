// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-autofill-vault/internal/adapter"
	"github.com/MKhiriev/go-autofill-vault/internal/clock"
	"github.com/MKhiriev/go-autofill-vault/internal/crypto"
	"github.com/MKhiriev/go-autofill-vault/internal/logger"
	"github.com/MKhiriev/go-autofill-vault/internal/utils"
)

// CustodianState is the lifecycle state of the master key.
type CustodianState int

const (
	// StateLocked: no key, no prompt in flight.
	StateLocked CustodianState = iota
	// StatePrompting: the prompt was triggered and waiters may accumulate.
	// Only SetKey leaves this state.
	StatePrompting
	// StateUnlocked: the key is held in memory.
	StateUnlocked
)

func (s CustodianState) String() string {
	switch s {
	case StateLocked:
		return "locked"
	case StatePrompting:
		return "prompting"
	case StateUnlocked:
		return "unlocked"
	default:
		return fmt.Sprintf("CustodianState(%d)", int(s))
	}
}

type idGenerator interface {
	Generate() string
}

type waitResult struct {
	key *crypto.MasterKey
	err error
}

// waiter is one suspended RequestKey call. result is buffered so the
// resolving side never blocks.
type waiter struct {
	id     string
	result chan waitResult
	timer  *clock.Timer
}

type keyCustodian struct {
	prompt  adapter.PromptSurface
	clock   clock.Clock
	ids     idGenerator
	timeout time.Duration

	mu       sync.Mutex
	state    CustodianState
	key      *crypto.MasterKey
	lastUsed time.Time
	waiters  map[string]*waiter
	unlocked chan struct{}

	logger *logger.Logger
}

// DefaultKeyWaitTimeout is the per-waiter deadline used when none is
// configured.
const DefaultKeyWaitTimeout = 60 * time.Second

// NewKeyCustodian returns a locked custodian. Every waiter gets its own
// deadline of timeout, counted from its registration.
func NewKeyCustodian(prompt adapter.PromptSurface, clk clock.Clock, timeout time.Duration, log *logger.Logger) KeyCustodian {
	if timeout <= 0 {
		timeout = DefaultKeyWaitTimeout
	}
	return &keyCustodian{
		prompt:   prompt,
		clock:    clk,
		ids:      utils.NewUUIDGenerator(),
		timeout:  timeout,
		waiters:  make(map[string]*waiter),
		unlocked: make(chan struct{}),
		logger:   log,
	}
}

func (c *keyCustodian) RequestKey(ctx context.Context) (*crypto.MasterKey, error) {
	c.mu.Lock()
	if c.state == StateUnlocked {
		c.lastUsed = c.clock.Now()
		key := c.key
		c.mu.Unlock()
		return key, nil
	}

	w := &waiter{id: c.ids.Generate(), result: make(chan waitResult, 1)}
	c.waiters[w.id] = w
	w.timer = c.clock.AfterFunc(c.timeout, func() { c.expire(w.id) })

	c.state = StatePrompting
	pending := len(c.waiters)
	c.mu.Unlock()

	c.logger.Debug().Str("waiter", w.id).Int("pending", pending).Msg("waiting for master key")
	// The first waiter of an episode, or the first one after all earlier
	// waiters expired, asks for the prompt. Open is idempotent, so a prompt
	// that is still up stays as it is and a dismissed one comes back.
	if pending == 1 {
		go c.openPrompt()
	}

	select {
	case r := <-w.result:
		return r.key, r.err
	case <-ctx.Done():
		c.abandon(w.id)
		return nil, fmt.Errorf("wait for master key: %w", ctx.Err())
	}
}

func (c *keyCustodian) SetKey(_ context.Context, key *crypto.MasterKey) {
	c.mu.Lock()
	previous := c.key
	c.key = key
	c.state = StateUnlocked
	c.lastUsed = c.clock.Now()

	resolved := len(c.waiters)
	for id, w := range c.waiters {
		w.timer.Stop()
		w.result <- waitResult{key: key}
		delete(c.waiters, id)
	}

	close(c.unlocked)
	c.unlocked = make(chan struct{})
	c.mu.Unlock()

	if previous != nil && previous != key {
		previous.Destroy()
	}

	c.logger.Info().Int("resolved_waiters", resolved).Msg("vault unlocked")
	go c.closePrompt()
}

func (c *keyCustodian) HasKey() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateUnlocked
}

func (c *keyCustodian) State() CustodianState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *keyCustodian) Lock(_ context.Context) bool {
	return c.lock(0)
}

func (c *keyCustodian) LockIfIdle(_ context.Context, idle time.Duration) bool {
	return c.lock(idle)
}

// lock destroys the key when unlocked and idle for at least idle.
func (c *keyCustodian) lock(idle time.Duration) bool {
	c.mu.Lock()
	if c.state != StateUnlocked || c.clock.Now().Sub(c.lastUsed) < idle {
		c.mu.Unlock()
		return false
	}
	key := c.key
	c.key = nil
	c.state = StateLocked
	c.mu.Unlock()

	key.Destroy()
	c.logger.Info().Dur("idle_for", idle).Msg("vault locked")
	return true
}

func (c *keyCustodian) AwaitUnlocked(ctx context.Context) bool {
	c.mu.Lock()
	if c.state == StateUnlocked {
		c.mu.Unlock()
		return true
	}
	unlocked := c.unlocked
	c.mu.Unlock()

	select {
	case <-unlocked:
		return true
	case <-ctx.Done():
		return false
	}
}

// expire fails waiter id with ErrKeyTimeout. The custodian stays Prompting
// and the prompt stays open until SetKey.
func (c *keyCustodian) expire(id string) {
	w := c.remove(id)
	if w == nil {
		return
	}

	c.logger.Warn().Str("waiter", w.id).Dur("timeout", c.timeout).Msg("master key not provided in time")
	w.result <- waitResult{err: ErrKeyTimeout}
}

// abandon drops waiter id after its caller went away. Like expire it leaves
// the state and the prompt alone.
func (c *keyCustodian) abandon(id string) {
	w := c.remove(id)
	if w == nil {
		return
	}
	w.timer.Stop()
}

func (c *keyCustodian) remove(id string) *waiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	w, ok := c.waiters[id]
	if !ok {
		return nil
	}
	delete(c.waiters, id)
	return w
}

func (c *keyCustodian) openPrompt() {
	c.logger.Info().Msg("master password required, opening prompt")
	if err := c.prompt.Open(context.Background()); err != nil {
		c.logger.Err(err).Msg("failed to open unlock prompt")
	}
}

func (c *keyCustodian) closePrompt() {
	if err := c.prompt.Close(context.Background()); err != nil {
		c.logger.Err(err).Msg("failed to close unlock prompt")
	}
}
