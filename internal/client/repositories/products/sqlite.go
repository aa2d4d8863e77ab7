package products

import (
	"context"
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

func (r *SQLiteRepository) Insert(ctx context.Context, p *models.Product) (int64, error) {
	query := `INSERT INTO products (name, price, category, description, image_url, stock, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		p.Name, p.Price, p.Category, p.Description, p.ImageURL, p.Stock, p.CreatedAt.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("failed to insert product: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted product id: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	query := `SELECT id, name, price, category, description, image_url, stock, created_at
			FROM products ORDER BY name ASC`
	return r.selectMany(ctx, query)
}

func (r *SQLiteRepository) GetByCategory(ctx context.Context, category string) ([]models.Product, error) {
	query := `SELECT id, name, price, category, description, image_url, stock, created_at
			FROM products WHERE LOWER(category) = LOWER(?) ORDER BY name ASC`
	return r.selectMany(ctx, query, category)
}

func (r *SQLiteRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) selectMany(ctx context.Context, query string, args ...any) ([]models.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}
	defer rows.Close()

	var result []models.Product
	for rows.Next() {
		var p models.Product
		var createdAt int64
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.Description, &p.ImageURL, &p.Stock, &createdAt); err != nil {
			return nil, err
		}
		p.CreatedAt = time.UnixMilli(createdAt)
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
