// Package catalog builds the in-memory product catalog served by the API
// and implements listing pagination over it.
package catalog

import "github.com/Lixing-Zhang/kart-challenge/catalog-api/internal/models"

// Catalog is the normalized dataset. It is built once at startup and is
// read-only afterwards, so it can be shared across requests without locking.
type Catalog struct {
	Categories []models.Category
	Products   []models.Product
}

// Normalize deduplicates category names into identified categories and
// rewrites each product to reference its category by id.
//
// Category ids are assigned in first-occurrence order starting at 1.
// Product ids are the 1-based position of the product in raw.
func Normalize(raw []models.RawProduct) *Catalog {
	c := &Catalog{
		Categories: make([]models.Category, 0),
		Products:   make([]models.Product, 0, len(raw)),
	}

	for i, p := range raw {
		categoryID := c.categoryID(p.Category)
		if categoryID == 0 {
			categoryID = len(c.Categories) + 1
			c.Categories = append(c.Categories, models.Category{ID: categoryID, Name: p.Category})
		}

		c.Products = append(c.Products, models.Product{
			ID:          i + 1,
			CategoryID:  categoryID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Currency:    p.Currency,
			Available:   p.Available,
			MinAmount:   p.MinAmount,
			MaxAmount:   p.MaxAmount,
			Image:       p.Image,
		})
	}

	return c
}

// categoryID returns the id of the category with the given name, or 0.
func (c *Catalog) categoryID(name string) int {
	for _, category := range c.Categories {
		if category.Name == name {
			return category.ID
		}
	}
	return 0
}
