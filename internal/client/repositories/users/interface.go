package users

import (
	"context"

	"github.com/dmitrijs2005/levelup/internal/client/models"
)

// Repository describes persistence operations for User records.
// Implementations are typically backed by a local SQLite database.
type Repository interface {
	// Insert stores a new user and returns the generated id.
	Insert(ctx context.Context, u *models.User) (int64, error)

	// Update overwrites all mutable fields of an existing user by id.
	Update(ctx context.Context, u *models.User) error

	// GetByEmail returns the user with the exact (case-sensitive) email,
	// or (nil, nil) when no such user exists.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the user by id, or (nil, nil) when absent.
	GetByID(ctx context.Context, id int64) (*models.User, error)
}
