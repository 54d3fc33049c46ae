package repository

import "bookstore/models"

// TokenRepository defines the interface for password-reset token storage.
type TokenRepository interface {
	// ReplaceResetToken deletes any existing token of the same type for
	// the owning user and inserts the new one, keeping at most one
	// active reset token per user.
	ReplaceResetToken(token *models.UserToken) error
	// GetToken returns (nil, nil) when no row matches.
	GetToken(token, tokenType string) (*models.UserToken, error)
}
