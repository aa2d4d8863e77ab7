// Package api implements the REST clients for the two remote services the
// storefront consumes: the LevelUp identity backend and the public product
// catalog. Both are treated as unreliable; every transport or status
// failure collapses into ErrUnavailable so callers can branch on a single
// condition.
package api

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/levelup/internal/client/models"
)

// ErrUnavailable covers any remote failure: connection errors, timeouts
// imposed by the transport, and non-2xx responses.
var ErrUnavailable = errors.New("server unavailable")

// AuthResult is the identity endpoint's response to login and register.
type AuthResult struct {
	Token string            `json:"token"`
	User  models.RemoteUser `json:"user"`
}

// CatalogRating is remote-only metadata; the local store discards it.
type CatalogRating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// CatalogProduct is the remote catalog's item shape.
type CatalogProduct struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Price       float64       `json:"price"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Image       string        `json:"image"`
	Rating      CatalogRating `json:"rating"`
}

// Client is the remote surface the services depend on. The REST
// implementation is the production one; tests substitute fakes.
type Client interface {
	// Login authenticates against the identity endpoint.
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// Register creates a remote account. The account service treats a
	// failure here as best-effort only.
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)

	// Products lists the full remote catalog.
	Products(ctx context.Context) ([]CatalogProduct, error)

	// ProductByID fetches a single catalog item.
	ProductByID(ctx context.Context, id int64) (*CatalogProduct, error)

	// Categories lists the remote category names.
	Categories(ctx context.Context) ([]string, error)

	// ProductsByCategory lists the remote items in one category.
	ProductsByCategory(ctx context.Context, category string) ([]CatalogProduct, error)
}
