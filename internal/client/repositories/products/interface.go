package products

import (
	"context"

	"github.com/dmitrijs2005/levelup/internal/client/models"
)

// Repository describes persistence operations for catalog products.
type Repository interface {
	// Insert stores a new product and returns the generated id.
	Insert(ctx context.Context, p *models.Product) (int64, error)

	// GetAll returns every product ordered by name ascending.
	GetAll(ctx context.Context) ([]models.Product, error)

	// GetByCategory returns products whose category equals the argument
	// case-insensitively, ordered by name ascending.
	GetByCategory(ctx context.Context, category string) ([]models.Product, error)

	// Count returns the number of stored products.
	Count(ctx context.Context) (int64, error)
}
