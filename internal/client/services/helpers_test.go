package services

import (
	"context"
	"database/sql"
	"io"
	"testing"

	"github.com/dmitrijs2005/levelup/internal/client/api"
	"github.com/dmitrijs2005/levelup/internal/logging"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  email TEXT NOT NULL,
  password TEXT NOT NULL,
  name TEXT NOT NULL,
  country TEXT NOT NULL DEFAULT '',
  profile_image_path TEXT NOT NULL DEFAULT '',
  created_at INTEGER NOT NULL
);
CREATE TABLE products (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  price REAL NOT NULL,
  category TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  image_url TEXT NOT NULL DEFAULT '',
  stock INTEGER NOT NULL DEFAULT 0,
  created_at INTEGER NOT NULL
);
CREATE TABLE session (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func testLogger() logging.Logger {
	return logging.NewText(io.Discard)
}

// fakeAPI implements api.Client for service unit tests.
type fakeAPI struct {
	LoginRet *api.AuthResult
	LoginErr error

	RegisterRet *api.AuthResult
	RegisterErr error

	ProductsRet []api.CatalogProduct
	ProductsErr error

	CategoriesRet []string

	// recorded arguments
	LastLoginEmail    string
	LastLoginPassword string

	LastRegisterName     string
	LastRegisterEmail    string
	LastRegisterPassword string

	LoginCalls    int
	RegisterCalls int
	ProductsCalls int
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (*api.AuthResult, error) {
	f.LoginCalls++
	f.LastLoginEmail = email
	f.LastLoginPassword = password
	return f.LoginRet, f.LoginErr
}

func (f *fakeAPI) Register(ctx context.Context, name, email, password string) (*api.AuthResult, error) {
	f.RegisterCalls++
	f.LastRegisterName = name
	f.LastRegisterEmail = email
	f.LastRegisterPassword = password
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeAPI) Products(ctx context.Context) ([]api.CatalogProduct, error) {
	f.ProductsCalls++
	return f.ProductsRet, f.ProductsErr
}

func (f *fakeAPI) ProductByID(ctx context.Context, id int64) (*api.CatalogProduct, error) {
	for _, p := range f.ProductsRet {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, f.ProductsErr
}

func (f *fakeAPI) Categories(ctx context.Context) ([]string, error) {
	if f.ProductsErr != nil {
		return nil, f.ProductsErr
	}
	return f.CategoriesRet, nil
}

func (f *fakeAPI) ProductsByCategory(ctx context.Context, category string) ([]api.CatalogProduct, error) {
	return nil, f.ProductsErr
}
