package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/levelup/internal/client/models"
	"github.com/dmitrijs2005/levelup/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Insert stores a new user row. CreatedAt is persisted as unix milliseconds.
func (r *SQLiteRepository) Insert(ctx context.Context, u *models.User) (int64, error) {
	query := `INSERT INTO users (email, password, name, country, profile_image_path, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		u.Email, u.Password, u.Name, u.Country, u.ProfileImagePath, u.CreatedAt.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted user id: %w", err)
	}
	return id, nil
}

// Update overwrites the row identified by u.ID. It expects exactly one row
// to be affected.
func (r *SQLiteRepository) Update(ctx context.Context, u *models.User) error {
	query := `UPDATE users SET email=?, password=?, name=?, country=?, profile_image_path=?
			WHERE id=?`
	res, err := r.db.ExecContext(ctx, query,
		u.Email, u.Password, u.Name, u.Country, u.ProfileImagePath, u.ID)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra != 1 {
		return fmt.Errorf("wrong rows affected count: %d", ra)
	}
	return nil
}

func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT id, email, password, name, country, profile_image_path, created_at
			FROM users WHERE email = ? LIMIT 1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT id, email, password, name, country, profile_image_path, created_at
			FROM users WHERE id = ? LIMIT 1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteRepository) scanOne(row *sql.Row) (*models.User, error) {
	var u models.User
	var createdAt int64
	err := row.Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.Country, &u.ProfileImagePath, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select user: %w", err)
	}
	u.CreatedAt = time.UnixMilli(createdAt)
	return &u, nil
}
