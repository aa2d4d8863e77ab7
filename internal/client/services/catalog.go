// Package services contains application services for the LevelUp client:
// account reconciliation, catalog sync, and the in-memory cart.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/levelup/internal/client/api"
	"github.com/dmitrijs2005/levelup/internal/client/models"
	"github.com/dmitrijs2005/levelup/internal/client/repositories/products"
	"github.com/dmitrijs2005/levelup/internal/logging"
)

// remoteStock is the placeholder stock count assigned to synced catalog
// items; the remote catalog does not carry stock.
const remoteStock = 10

// CatalogService seeds the local product store, opportunistically merges
// remote catalog data, and serves catalog reads.
type CatalogService struct {
	repo products.Repository
	api  api.Client
	log  logging.Logger
}

// NewCatalogService constructs a CatalogService over the given repository
// and remote client.
func NewCatalogService(repo products.Repository, apiClient api.Client, log logging.Logger) *CatalogService {
	return &CatalogService{repo: repo, api: apiClient, log: log}
}

// EnsureSeeded inserts the bootstrap products when the store is empty,
// stamping them all with one shared timestamp. Repeated calls are no-ops
// once the store holds any product. The check-then-insert sequence is not
// guarded against concurrent first-time callers.
func (s *CatalogService) EnsureSeeded(ctx context.Context) error {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check catalog: %w", err)
	}
	if n > 0 {
		return nil
	}

	now := time.Now()
	seed := bootstrapProducts()
	for i := range seed {
		seed[i].CreatedAt = now
		if _, err := s.repo.Insert(ctx, &seed[i]); err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
	}
	s.log.Info(ctx, "seeded catalog", "count", len(seed))
	return nil
}

// FetchRemoteCatalog returns the remote catalog mapped to local products.
// Remote failures degrade silently to an empty result.
func (s *CatalogService) FetchRemoteCatalog(ctx context.Context) []models.Product {
	items, err := s.api.Products(ctx)
	if err != nil {
		s.log.Warn(ctx, "remote catalog unavailable", "error", err)
		return nil
	}
	now := time.Now()
	result := make([]models.Product, 0, len(items))
	for _, item := range items {
		result = append(result, mapCatalogProduct(item, now))
	}
	return result
}

// RemoteCategories returns the remote category names. Remote failures
// degrade silently to an empty result.
func (s *CatalogService) RemoteCategories(ctx context.Context) []string {
	cats, err := s.api.Categories(ctx)
	if err != nil {
		s.log.Warn(ctx, "remote categories unavailable", "error", err)
		return nil
	}
	return cats
}

// SyncProducts merges the remote catalog into the local store. An item is
// inserted only while the store is empty, and emptiness is re-checked
// before every insert. All failures are suppressed; partial imports are
// possible and not reported.
//
// TODO: replace the per-item emptiness check with an upsert keyed by the
// remote id. As written, a sync into an empty store lands at most one item
// (the first insert makes the store non-empty for the remaining checks)
// and a sync into a populated store lands none.
func (s *CatalogService) SyncProducts(ctx context.Context) {
	items, err := s.api.Products(ctx)
	if err != nil {
		s.log.Warn(ctx, "catalog sync skipped", "error", err)
		return
	}

	now := time.Now()
	for _, item := range items {
		n, err := s.repo.Count(ctx)
		if err != nil {
			s.log.Warn(ctx, "catalog sync aborted", "error", err)
			return
		}
		if n != 0 {
			continue
		}
		p := mapCatalogProduct(item, now)
		if _, err := s.repo.Insert(ctx, &p); err != nil {
			s.log.Warn(ctx, "catalog sync aborted", "error", err)
			return
		}
	}
}

// ListAll returns every local product ordered by name.
func (s *CatalogService) ListAll(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// ListByCategory returns local products whose category matches the argument
// case-insensitively (exact equality, not substring), ordered by name.
func (s *CatalogService) ListByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return s.repo.GetByCategory(ctx, category)
}

// mapCatalogProduct converts the remote item shape to the local Product,
// discarding the rating and assigning the placeholder stock.
func mapCatalogProduct(item api.CatalogProduct, now time.Time) models.Product {
	return models.Product{
		ID:          item.ID,
		Name:        item.Title,
		Price:       item.Price,
		Category:    item.Category,
		Description: item.Description,
		ImageURL:    item.Image,
		Stock:       remoteStock,
		CreatedAt:   now,
	}
}
