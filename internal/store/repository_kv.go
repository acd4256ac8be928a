// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	sq "github.com/Masterminds/squirrel"

	"github.com/unitytechnetwork/Afifi-sub000/internal/logger"
)

const (
	kvTable     = "kv_records"
	kvKey       = "record_key"
	kvValue     = "record_value"
	kvUpdatedAt = "updated_at"

	defaultWriteAttempts = 3
	defaultWriteBackoff  = 50 * time.Millisecond
)

// kvRepository is the SQL implementation of [KVStore]. The same queries
// serve SQLite and PostgreSQL; only the placeholder format differs.
type kvRepository struct {
	db       *DB
	logger   *logger.Logger
	attempts int
	backoff  time.Duration
}

// NewKVRepository constructs a [KVStore] over an open and migrated database.
func NewKVRepository(db *DB, log *logger.Logger) (KVStore, error) {
	if db == nil || db.DB == nil {
		return nil, ErrNilDB
	}
	log.Debug().Str("dialect", string(db.dialect)).Msg("creating key-value repository")
	return &kvRepository{
		db:       db,
		logger:   log,
		attempts: defaultWriteAttempts,
		backoff:  defaultWriteBackoff,
	}, nil
}

func (r *kvRepository) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}
	log := logger.FromContext(ctx)

	query, args, err := r.db.statementBuilder().
		Select(kvValue).
		From(kvTable).
		Where(sq.Eq{kvKey: key}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*kvRepository.Get").Msg("error building query")
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		log.Err(err).Str("func", "*kvRepository.Get").Str("key", key).Msg("error reading value")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return value, true, nil
}

func (r *kvRepository) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	log := logger.FromContext(ctx)

	query, args, err := r.db.statementBuilder().
		Insert(kvTable).
		Columns(kvKey, kvValue, kvUpdatedAt).
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix(fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s = excluded.%s, %s = excluded.%s",
			kvKey, kvValue, kvValue, kvUpdatedAt, kvUpdatedAt)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*kvRepository.Set").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	for attempt := 1; ; attempt++ {
		_, err = r.db.ExecContext(ctx, query, args...)
		if err == nil {
			return nil
		}
		if attempt >= r.attempts || r.db.classify(err) != Retryable {
			log.Err(err).Str("func", "*kvRepository.Set").Str("key", key).Int("attempt", attempt).Msg("error writing value")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		log.Warn().Err(err).Str("func", "*kvRepository.Set").Int("attempt", attempt).Msg("retrying write")
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrExecutingStatement, ctx.Err())
		case <-time.After(r.backoff * time.Duration(attempt)):
		}
	}
}

func (r *kvRepository) List(ctx context.Context, prefix string) ([]string, error) {
	log := logger.FromContext(ctx)

	// LIKE treats "_" as a wildcard and every key prefix contains one.
	builder := r.db.statementBuilder().Select(kvKey).From(kvTable).OrderBy(kvKey)
	if prefix != "" {
		builder = builder.Where(sq.Expr("substr("+kvKey+", 1, ?) = ?", utf8.RuneCountInString(prefix), prefix))
	}
	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*kvRepository.List").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*kvRepository.List").Str("prefix", prefix).Msg("error listing keys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err = rows.Scan(&key); err != nil {
			log.Err(err).Str("func", "*kvRepository.List").Msg("error scanning key")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		keys = append(keys, key)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*kvRepository.List").Msg("error iterating keys")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return keys, nil
}

func (r *kvRepository) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	log := logger.FromContext(ctx)

	query, args, err := r.db.statementBuilder().
		Delete(kvTable).
		Where(sq.Eq{kvKey: key}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*kvRepository.Delete").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*kvRepository.Delete").Str("key", key).Msg("error deleting value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
