package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-news-kiosk/internal/logger"
	"github.com/MKhiriev/go-news-kiosk/migrations"
)

// Dialect names the SQL substrate behind a [DB].
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite3"
	DialectPostgres Dialect = "postgres"
)

// DB wraps a database/sql connection with the dialect-specific pieces the
// key-value store needs: the goose dialect, the squirrel placeholder format
// and the error mapper of the driver.
type DB struct {
	*sql.DB
	dialect     Dialect
	errorMapper func(error) error
	logger      *logger.Logger
}

// Migrate applies the embedded migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// builder returns a squirrel statement builder using the placeholder
// format of the dialect.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// mapError converts a driver error into a store sentinel when possible.
func (db *DB) mapError(err error) error {
	if db.errorMapper == nil {
		return err
	}
	return db.errorMapper(err)
}
