package repository

import (
	"context"
	"slices"

	"github.com/Lixing-Zhang/kart-challenge/catalog-api/internal/catalog"
	"github.com/Lixing-Zhang/kart-challenge/catalog-api/internal/models"
)

// CatalogRepository defines read access to the catalog
type CatalogRepository interface {
	Categories(ctx context.Context) ([]models.Category, error)
	Products(ctx context.Context) ([]models.Product, error)
}

// InMemoryCatalogRepository serves a catalog normalized at startup.
// The catalog is never modified, so no locking is needed.
type InMemoryCatalogRepository struct {
	catalog *catalog.Catalog
}

// NewInMemoryCatalogRepository creates a repository over c
func NewInMemoryCatalogRepository(c *catalog.Catalog) *InMemoryCatalogRepository {
	return &InMemoryCatalogRepository{
		catalog: c,
	}
}

// Categories returns a copy of all categories in id order
func (r *InMemoryCatalogRepository) Categories(ctx context.Context) ([]models.Category, error) {
	return slices.Clone(r.catalog.Categories), nil
}

// Products returns a copy of all products in id order
func (r *InMemoryCatalogRepository) Products(ctx context.Context) ([]models.Product, error) {
	return slices.Clone(r.catalog.Products), nil
}
