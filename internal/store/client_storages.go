package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-news-kiosk/internal/config"
	"github.com/MKhiriev/go-news-kiosk/internal/logger"
)

// MemoryDSN selects the process-local key-value store.
const MemoryDSN = ":memory:"

// ClientStorages groups every store the kiosk services need. All of them
// share a single [KeyValueStore].
type ClientStorages struct {
	// KeyValueStore is the persistence substrate.
	KeyValueStore KeyValueStore
	// Accounts is the registered account collection.
	Accounts AccountRepository
	// Session is the logged-in account slot.
	Session SessionManager
	// SelectedArticle remembers the article the user opened last.
	SelectedArticle SelectedArticleStore

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. The DSN picks the substrate:
//   - ":memory:" keeps everything in process memory;
//   - "postgres://" or "postgresql://" connects to PostgreSQL;
//   - anything else is a SQLite file path, created if missing.
//
// SQL substrates are migrated before use.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	if cfg.DB.DSN == MemoryDSN {
		return newClientStorages(NewMemoryKeyValueStore(), nil, cfg.StrictSessionSync, logger), nil
	}

	ctx := context.Background()

	var (
		db  *DB
		err error
	)
	switch {
	case strings.HasPrefix(cfg.DB.DSN, "postgres://"), strings.HasPrefix(cfg.DB.DSN, "postgresql://"):
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
	default:
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
	}
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(NewSQLKeyValueStore(db, logger), db, cfg.StrictSessionSync, logger), nil
}

func newClientStorages(kv KeyValueStore, db *DB, strict bool, logger *logger.Logger) *ClientStorages {
	accounts := NewAccountRepository(kv, strict, logger)

	return &ClientStorages{
		KeyValueStore:   kv,
		Accounts:        accounts,
		Session:         NewSessionManager(kv, accounts, logger),
		SelectedArticle: NewSelectedArticleStore(kv),
		db:              db,
	}
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
