package store

import (
	"fmt"

	"github.com/jackc/pgerrcode"
)

// mapPostgresError maps a PostgreSQL error onto a store sentinel based on
// its SQLSTATE code. See
// https://www.postgresql.org/docs/current/errcodes-appendix.html.
//
//   - Class 42, undefined table: [ErrStoreNotMigrated]
//   - Class 08 and 57P03, connection problems: [ErrStoreUnavailable]
//
// Any other error is returned unchanged.
func mapPostgresError(err error) error {
	switch postgresError(err) {
	case pgerrcode.UndefinedTable:
		return fmt.Errorf("%w: %w", ErrStoreNotMigrated, err)

	// Class 08, connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.CannotConnectNow:
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return err
}
