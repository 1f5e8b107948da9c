package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-autofill-vault/internal/config"
	"github.com/MKhiriev/go-autofill-vault/internal/logger"
)

// Storages groups the persistence components used by the service layer.
type Storages struct {
	KeyValue    KeyValueStorage
	Salts       SaltStore
	Credentials CredentialStore

	db *DB
}

// NewStorages opens the storage selected by cfg.DSN. The SQLite database is
// created and migrated on first use; [MemoryDSN] selects a process-local
// store.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	if cfg.DSN == MemoryDSN {
		log.Warn().Msg("using in-memory storage; salt and credentials will not survive a restart")
		return NewMemoryStorages(), nil
	}

	log.Info().Str("dsn", cfg.DSN).Msg("opening vault storage...")

	db, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(NewKeyValueRepository(db, log), db), nil
}

// NewMemoryStorages returns storages backed by [NewMemoryKeyValueStorage].
func NewMemoryStorages() *Storages {
	return newStorages(NewMemoryKeyValueStorage(), nil)
}

func newStorages(kv KeyValueStorage, db *DB) *Storages {
	return &Storages{
		KeyValue:    kv,
		Salts:       NewSaltStore(kv),
		Credentials: NewCredentialStore(kv),
		db:          db,
	}
}

// Close releases the database handle, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
