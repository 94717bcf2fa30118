// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-news-kiosk/internal/logger"
)

const kvTable = "kv_store"

// sqlKeyValueStore is the [KeyValueStore] backed by the kv_store table of
// a SQLite or PostgreSQL database.
type sqlKeyValueStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLKeyValueStore constructs a [KeyValueStore] on top of db. The table
// must already exist; see [DB.Migrate].
func NewSQLKeyValueStore(db *DB, logger *logger.Logger) KeyValueStore {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating sql key-value store")
	return &sqlKeyValueStore{
		db:     db,
		logger: logger,
	}
}

func (s *sqlKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.db.builder().
		Select("value").
		From(kvTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrKeyNotFound
		}
		log.Err(err).Str("func", "*sqlKeyValueStore.Get").Str("key", key).Msg("error reading value")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, s.db.mapError(err))
	}

	return value, nil
}

func (s *sqlKeyValueStore) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := s.db.builder().
		Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqlKeyValueStore.Set").Str("key", key).Msg("error upserting value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, s.db.mapError(err))
	}

	return nil
}

func (s *sqlKeyValueStore) Remove(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := s.db.builder().
		Delete(kvTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqlKeyValueStore.Remove").Str("key", key).Msg("error deleting value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, s.db.mapError(err))
	}

	return nil
}
