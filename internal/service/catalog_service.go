package service

import (
	"context"
	"fmt"

	"github.com/Lixing-Zhang/kart-challenge/catalog-api/internal/catalog"
	"github.com/Lixing-Zhang/kart-challenge/catalog-api/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/catalog-api/internal/repository"
)

// CatalogService handles business logic for categories and products
type CatalogService struct {
	repo repository.CatalogRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo repository.CatalogRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// ListCategories returns every category
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.repo.Categories(ctx)
}

// ListProducts returns one page of products. A categoryID of 0 lists
// every category.
func (s *CatalogService) ListProducts(ctx context.Context, page, categoryID int) (models.ProductPage, error) {
	products, err := s.repo.Products(ctx)
	if err != nil {
		return models.ProductPage{}, fmt.Errorf("failed to read products: %w", err)
	}
	return catalog.Paginate(products, page, categoryID), nil
}
