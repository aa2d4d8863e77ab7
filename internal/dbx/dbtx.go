// Package dbx holds the small database plumbing shared by repositories:
// the DBTX handle abstraction and a transaction wrapper.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the part of database/sql the repositories rely on. Passing it
// instead of *sql.DB lets the same repository code run inside or outside
// a transaction, since *sql.Tx satisfies it too.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs op inside a transaction. The transaction commits when op
// returns nil and rolls back otherwise. A panic inside op rolls back and
// is rethrown.
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, op func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = op(ctx, tx)
	return err
}
