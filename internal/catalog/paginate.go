package catalog

import "github.com/Lixing-Zhang/kart-challenge/catalog-api/internal/models"

// PerPage is the fixed size of a product listing page.
const PerPage = 10

// Paginate returns the requested page of products, optionally restricted to
// one category. A categoryID of 0 means no filter.
//
// page is clamped to [1, totalPages]. When nothing matches, totalPages is 0
// and so is currentPage, and the page holds no products.
func Paginate(products []models.Product, page, categoryID int) models.ProductPage {
	filtered := products
	if categoryID != 0 {
		filtered = make([]models.Product, 0)
		for _, p := range products {
			if p.CategoryID == categoryID {
				filtered = append(filtered, p)
			}
		}
	}

	totalElements := len(filtered)
	totalPages := (totalElements + PerPage - 1) / PerPage

	currentPage := max(page, 1)
	currentPage = min(currentPage, totalPages)

	data := make([]models.Product, 0, PerPage)
	if currentPage > 0 {
		start := (currentPage - 1) * PerPage
		end := min(currentPage*PerPage, totalElements)
		data = append(data, filtered[start:end]...)
	}

	return models.ProductPage{
		Data: data,
		Meta: models.PageMeta{
			PerPage:       PerPage,
			TotalPages:    totalPages,
			CurrentPage:   currentPage,
			TotalElements: totalElements,
		},
	}
}
