// Package store opens the local SQLite database, applies migrations, and
// bundles the repositories the services depend on.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/levelup/internal/client/migrations"
	"github.com/dmitrijs2005/levelup/internal/client/repositories/products"
	"github.com/dmitrijs2005/levelup/internal/client/repositories/session"
	"github.com/dmitrijs2005/levelup/internal/client/repositories/users"
	"github.com/pressly/goose/v3"
)

// Repositories groups the per-entity repositories built over one database.
type Repositories struct {
	Users    users.Repository
	Products products.Repository
	Session  session.Repository
	DB       *sql.DB
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the database at dsn, migrates the schema, and returns
// the repository bundle. The caller registers the sqlite driver (usually by
// importing modernc.org/sqlite for its side effect).
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		Users:    users.NewSQLiteRepository(db),
		Products: products.NewSQLiteRepository(db),
		Session:  session.NewSQLiteRepository(db),
		DB:       db,
	}, nil
}
