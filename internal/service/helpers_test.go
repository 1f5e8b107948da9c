package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-autofill-vault/internal/crypto"
	"github.com/MKhiriev/go-autofill-vault/models"
)

var testSalt = []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10}

func deriveTestKey(t *testing.T, password string) *crypto.MasterKey {
	t.Helper()
	key, err := crypto.NewKeyDeriver(crypto.MinIterations).Derive(password, testSalt)
	require.NoError(t, err)
	return key
}

// promptSpy counts prompt calls. Open and Close run in their own
// goroutines, so reads go through atomics.
type promptSpy struct {
	opens  atomic.Int32
	closes atomic.Int32
}

func (p *promptSpy) Open(context.Context) error {
	p.opens.Add(1)
	return nil
}

func (p *promptSpy) Close(context.Context) error {
	p.closes.Add(1)
	return nil
}

// staticCustodian hands out keys from a queue, then the last one forever,
// or fails with err.
type staticCustodian struct {
	mu       sync.Mutex
	keys     []*crypto.MasterKey
	err      error
	requests int
}

func (c *staticCustodian) RequestKey(context.Context) (*crypto.MasterKey, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests++
	if c.err != nil {
		return nil, c.err
	}
	key := c.keys[0]
	if len(c.keys) > 1 {
		c.keys = c.keys[1:]
	}
	return key, nil
}

func (c *staticCustodian) requestCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.requests
}

func (c *staticCustodian) SetKey(context.Context, *crypto.MasterKey)      {}
func (c *staticCustodian) HasKey() bool                                   { return c.err == nil }
func (c *staticCustodian) Lock(context.Context) bool                      { return false }
func (c *staticCustodian) LockIfIdle(context.Context, time.Duration) bool { return false }
func (c *staticCustodian) AwaitUnlocked(context.Context) bool             { return c.err == nil }
func (c *staticCustodian) State() CustodianState                          { return StateUnlocked }

// keyResult is the outcome of a RequestKey call made in a goroutine.
type keyResult struct {
	key *crypto.MasterKey
	err error
}

func requestKeyAsync(ctx context.Context, c KeyCustodian) <-chan keyResult {
	out := make(chan keyResult, 1)
	go func() {
		key, err := c.RequestKey(ctx)
		out <- keyResult{key: key, err: err}
	}()
	return out
}

// decrypterFunc adapts a function to the decrypter interface.
type decrypterFunc func(ctx context.Context, value models.SealedValue) models.Response

func (f decrypterFunc) Decrypt(ctx context.Context, value models.SealedValue) models.Response {
	return f(ctx, value)
}
