package repository

import "bookstore/models"

// CartRepository defines the interface for the server-side cart. The
// store keeps a single cart keyed by product id.
type CartRepository interface {
	GetItems() ([]*models.CartItem, error)
	// GetItem returns (nil, nil) when the product is not in the cart.
	GetItem(productID string) (*models.CartItem, error)
	AddItem(item *models.CartItem) error
	IncrementQuantity(productID string, delta int) error
	SetQuantity(productID string, quantity int) error
	RemoveItem(productID string) error
	Clear() error
}
