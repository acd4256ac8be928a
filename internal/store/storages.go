package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/unitytechnetwork/Afifi-sub000/internal/config"
	"github.com/unitytechnetwork/Afifi-sub000/internal/logger"
)

// DSNMemory selects the process-local store.
const DSNMemory = "memory"

// Storages owns the storage backend of a process.
type Storages struct {
	KV KVStore
	db *DB
}

// NewStorages opens the backend named by cfg.DSN and applies migrations:
//
//   - "memory": in-process map, nothing persisted;
//   - "postgres://..." or "postgresql://...": PostgreSQL through pgx;
//   - "sqlite://<path>" or a plain file path: SQLite file.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	dsn := strings.TrimSpace(cfg.DSN)

	var (
		db  *DB
		err error
	)
	switch {
	case dsn == DSNMemory:
		log.Info().Str("func", "NewStorages").Msg("using in-memory storage")
		return &Storages{KV: NewMemoryStore()}, nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err = NewConnectPostgres(ctx, dsn, log)
	case strings.HasPrefix(dsn, "sqlite://"):
		db, err = NewConnectSQLite(ctx, strings.TrimPrefix(dsn, "sqlite://"), log)
	case dsn != "" && !strings.Contains(dsn, "://"):
		db, err = NewConnectSQLite(ctx, dsn, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
		db.Close()
		return nil, err
	}

	kv, err := NewKVRepository(db, log)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Storages{KV: kv, db: db}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
