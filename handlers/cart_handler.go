package handlers

import (
	"encoding/json"
	"net/http"

	"bookstore/models"
	"bookstore/repository"
)

type CartHandler struct {
	Cart    repository.CartRepository
	Catalog repository.CatalogRepository
}

// GetCart handler
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	items, err := h.Cart.GetItems()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if items == nil {
		items = []*models.CartItem{}
	}
	for _, item := range items {
		item.ImageURL = normalizeImageURL(item.ImageURL)
	}
	writeJSON(w, http.StatusOK, items)
}

// AddToCart handler. An item already in the cart gets its quantity
// bumped; otherwise a snapshot of the product is inserted.
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "productId is required")
		return
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	product, err := h.Catalog.GetProductByID(req.ProductID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if product == nil {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}

	existing, err := h.Cart.GetItem(req.ProductID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	if existing != nil {
		err = h.Cart.IncrementQuantity(req.ProductID, req.Quantity)
	} else {
		err = h.Cart.AddItem(&models.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Author:    product.Author,
			Price:     product.Price,
			Quantity:  req.Quantity,
			ImageURL:  normalizeImageURL(product.ImageURL),
		})
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// UpdateCart handler
func (h *CartHandler) UpdateCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemID   string `json:"itemId"`
		Quantity int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ItemID == "" {
		writeError(w, http.StatusBadRequest, "itemId is required")
		return
	}

	existing, err := h.Cart.GetItem(req.ItemID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Item not found in cart")
		return
	}

	if err := h.Cart.SetQuantity(req.ItemID, req.Quantity); err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// RemoveFromCart handler
func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request, itemID string) {
	if err := h.Cart.RemoveItem(itemID); err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Checkout handler. Payment is out of scope; checkout just empties the
// cart.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	if err := h.Cart.Clear(); err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
