package store

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingKV fails every call with err.
type failingKV struct {
	getErr error
	setErr error
	inner  KeyValueStorage
}

func (f *failingKV) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.inner.Get(ctx, key)
}

func (f *failingKV) Set(ctx context.Context, key string, value []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.inner.Set(ctx, key, value)
}

func TestSaltStore_CreatesOnceThenReuses(t *testing.T) {
	kv := NewMemoryKeyValueStorage()
	s := NewSaltStore(kv)
	ctx := context.Background()

	first, err := s.GetOrCreateSalt(ctx)
	require.NoError(t, err)
	assert.Len(t, first, 16)

	second, err := s.GetOrCreateSalt(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// a new store over the same medium sees the persisted salt
	third, err := NewSaltStore(kv).GetOrCreateSalt(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestSaltStore_ReturnsPersistedSalt(t *testing.T) {
	kv := NewMemoryKeyValueStorage()
	ctx := context.Background()
	persisted := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	require.NoError(t, kv.Set(ctx, SaltKey, persisted))

	got, err := NewSaltStore(kv).GetOrCreateSalt(ctx)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(persisted, got))
}

func TestSaltStore_CorruptedSaltIsNotRegenerated(t *testing.T) {
	kv := NewMemoryKeyValueStorage()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, SaltKey, []byte{1, 2, 3}))

	_, err := NewSaltStore(kv).GetOrCreateSalt(ctx)
	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, ErrCorruptedValue)

	stored, err := kv.Get(ctx, SaltKey)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, stored)
}

func TestSaltStore_StorageFailures(t *testing.T) {
	ctx := context.Background()
	readErr := errors.Join(ErrStorage, errors.New("read failed"))
	writeErr := errors.Join(ErrStorage, errors.New("write failed"))

	_, err := NewSaltStore(&failingKV{getErr: readErr}).GetOrCreateSalt(ctx)
	assert.ErrorIs(t, err, ErrStorage)

	_, err = NewSaltStore(&failingKV{setErr: writeErr, inner: NewMemoryKeyValueStorage()}).GetOrCreateSalt(ctx)
	assert.ErrorIs(t, err, ErrStorage)
}

func TestSaltStore_GeneratorFailure(t *testing.T) {
	s := &saltStore{
		kv:       NewMemoryKeyValueStorage(),
		generate: func() ([]byte, error) { return nil, errors.New("no entropy") },
	}

	_, err := s.GetOrCreateSalt(context.Background())
	assert.ErrorIs(t, err, ErrStorage)
}
