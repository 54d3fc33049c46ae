package repository

import "bookstore/models"

// CatalogRepository defines read access to categories and products,
// plus the admin-only product update. Single-row lookups return
// (nil, nil) when no row matches.
type CatalogRepository interface {
	GetCategories() ([]*models.Category, error)
	GetCategoryByID(id string) (*models.Category, error)
	GetProductsByCategory(categoryID string) ([]*models.Product, error)
	GetProductByID(id string) (*models.Product, error)
	GetProductsByIDs(ids []string) ([]*models.Product, error)
	// UpdateProduct applies the non-nil fields and reports whether the
	// product existed.
	UpdateProduct(id string, upd *models.ProductUpdate) (bool, error)
}
