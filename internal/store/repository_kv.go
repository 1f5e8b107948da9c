// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-autofill-vault/internal/logger"
)

type keyValueRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewKeyValueRepository returns a [KeyValueStorage] backed by the
// kv_entries table of db.
func NewKeyValueRepository(db *DB, logger *logger.Logger) KeyValueStorage {
	return &keyValueRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *keyValueRepository) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := kvBuilder.
		Select(kvColumnValue).
		From(kvTable).
		Where(sq.Eq{kvColumnKey: key}).
		ToSql()
	if err != nil {
		r.logger.Err(err).Str("func", "keyValueRepository.Get").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w: %w", ErrStorage, ErrBuildingSQLQuery, err)
	}

	var value []byte
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "keyValueRepository.Get").Str("key", key).Msg("error reading value")
		return nil, fmt.Errorf("%w: %w: %w", ErrStorage, ErrExecutingQuery, err)
	}

	return value, nil
}

func (r *keyValueRepository) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := kvBuilder.
		Insert(kvTable).
		Columns(kvColumnKey, kvColumnValue, kvColumnUpdatedAt).
		Values(key, value, r.now()).
		Suffix(kvUpsertSuffix).
		ToSql()
	if err != nil {
		r.logger.Err(err).Str("func", "keyValueRepository.Set").Msg("error building upsert query")
		return fmt.Errorf("%w: %w: %w", ErrStorage, ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "keyValueRepository.Set").Str("key", key).Msg("error writing value")
		return fmt.Errorf("%w: %w: %w", ErrStorage, ErrExecutingStatement, err)
	}

	return nil
}
