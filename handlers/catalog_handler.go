package handlers

import (
	"encoding/json"
	"net/http"
	"path"
	"strings"

	"bookstore/models"
	"bookstore/repository"
)

// featuredProductIDs is the fixed storefront selection.
var featuredProductIDs = []string{"1", "3", "7", "11", "8"}

type CatalogHandler struct {
	Repo repository.CatalogRepository
}

// GetCategories handler
func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Repo.GetCategories()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if categories == nil {
		categories = []*models.Category{}
	}
	writeJSON(w, http.StatusOK, categories)
}

// GetCategory handler
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request, id string) {
	category, err := h.Repo.GetCategoryByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if category == nil {
		writeError(w, http.StatusNotFound, "Category not found")
		return
	}
	writeJSON(w, http.StatusOK, category)
}

// GetCategoryProducts handler
func (h *CatalogHandler) GetCategoryProducts(w http.ResponseWriter, r *http.Request, categoryID string) {
	products, err := h.Repo.GetProductsByCategory(categoryID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, normalizeProducts(products))
}

// GetFeaturedProducts handler
func (h *CatalogHandler) GetFeaturedProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Repo.GetProductsByIDs(featuredProductIDs)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, normalizeProducts(products))
}

// GetProduct handler
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request, id string) {
	product, err := h.Repo.GetProductByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if product == nil {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}
	product.ImageURL = normalizeImageURL(product.ImageURL)
	writeJSON(w, http.StatusOK, product)
}

// UpdateProduct handler. Admin only; registered behind RequireAdmin.
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request, id string) {
	var upd models.ProductUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	found, err := h.Repo.UpdateProduct(id, &upd)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

const imageBaseURL = "/api/images"

// normalizeImageURL rewrites stored image paths onto the API image
// endpoint so the frontend never depends on where files actually live.
func normalizeImageURL(url string) string {
	if url == "" || strings.HasPrefix(url, imageBaseURL) || strings.HasPrefix(url, "http") {
		return url
	}
	return imageBaseURL + "/books/" + path.Base(url)
}

func normalizeProducts(products []*models.Product) []*models.Product {
	if products == nil {
		return []*models.Product{}
	}
	for _, p := range products {
		p.ImageURL = normalizeImageURL(p.ImageURL)
	}
	return products
}
