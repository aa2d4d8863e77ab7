package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/levelup/internal/dbx"
)

const (
	keyLoggedIn = "logged_in"
	keyUserID   = "user_id"
	keyToken    = "token"
)

// SQLiteRepository stores the session as rows in a small key/value table.
// Writes touch several keys, so the repository owns a *sql.DB and wraps
// them in a transaction.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given database.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) SetLoggedIn(ctx context.Context, userID int64, token string) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, keyLoggedIn, "1"); err != nil {
			return err
		}
		if err := set(ctx, tx, keyUserID, strconv.FormatInt(userID, 10)); err != nil {
			return err
		}
		return set(ctx, tx, keyToken, token)
	})
}

func (r *SQLiteRepository) Current(ctx context.Context) (*State, error) {
	s := &State{}

	loggedIn, err := get(ctx, r.db, keyLoggedIn)
	if err != nil {
		return nil, err
	}
	if loggedIn != "1" {
		return s, nil
	}
	s.LoggedIn = true

	rawID, err := get(ctx, r.db, keyUserID)
	if err != nil {
		return nil, err
	}
	if rawID != "" {
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt session user id %q: %w", rawID, err)
		}
		s.UserID = id
	}

	s.Token, err = get(ctx, r.db, keyToken)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func set(ctx context.Context, db dbx.DBTX, key, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

func get(ctx context.Context, db dbx.DBTX, key string) (string, error) {
	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}
