package repository

import (
	"errors"

	"bookstore/models"
)

// ErrDuplicateEmail is returned by CreateUser when the unique constraint
// on users.email rejects the insert.
var ErrDuplicateEmail = errors.New("email already exists")

// UserRepository defines the interface for user operations.
// Lookup methods return (nil, nil) when no row matches.
type UserRepository interface {
	// CreateUser inserts the user and fills in the generated ID.
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id int64) (*models.User, error)
	UpdateLastLogin(id int64) error
	// ResetPassword overwrites the password hash and deletes every
	// password_reset token for the user in a single transaction, so a
	// consumed token can never outlive the password change.
	ResetPassword(id int64, passwordHash string) error
}
