// Package auth implements credential validation, password hashing,
// session token issuance and verification, and the password-reset token
// lifecycle for the bookstore API.
package auth

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"bookstore/config"
	"bookstore/models"
	"bookstore/repository"
)

// resetTokenTTL is how long a password-reset token stays redeemable.
const resetTokenTTL = 24 * time.Hour

// Manager mediates every auth operation against the user and token
// stores. Configuration is fixed at construction; nothing here reads
// the environment.
type Manager struct {
	users      repository.UserRepository
	tokens     repository.TokenRepository
	secret     []byte
	expiration time.Duration
	bcryptCost int
}

func NewManager(users repository.UserRepository, tokens repository.TokenRepository, cfg *config.Config) *Manager {
	return &Manager{
		users:      users,
		tokens:     tokens,
		secret:     []byte(cfg.JWTSecret),
		expiration: time.Duration(cfg.JWTExpirationHours) * time.Hour,
		bcryptCost: cfg.BcryptCost,
	}
}

// Register validates the input, hashes the password, and persists a new
// user with the default role. Promotion to admin happens out of band.
func (m *Manager) Register(email, password, firstName, lastName string) (int64, error) {
	if err := ValidateEmail(email); err != nil {
		return 0, err
	}
	if err := ValidatePassword(password); err != nil {
		return 0, err
	}

	existing, err := m.users.GetUserByEmail(email)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if existing != nil {
		return 0, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), m.bcryptCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    firstName,
		LastName:     lastName,
		Role:         models.RoleUser,
	}

	if err := m.users.CreateUser(user); err != nil {
		// A concurrent registration can slip past the lookup above;
		// the unique constraint reports it as a duplicate, not a
		// storage failure.
		if err == repository.ErrDuplicateEmail {
			return 0, ErrEmailTaken
		}
		return 0, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return user.ID, nil
}

// Login verifies the credentials and issues a session token. Unknown
// email and wrong password produce the same error.
func (m *Manager) Login(email, password string) (string, *models.User, error) {
	user, err := m.users.GetUserByEmail(email)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := m.generateSessionToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	// Best effort: a failed timestamp update must not fail the login.
	if err := m.users.UpdateLastLogin(user.ID); err != nil {
		log.Printf("could not update last_login for user %d: %v", user.ID, err)
	}

	return token, user, nil
}

// CreatePasswordResetToken issues a fresh reset token for the account,
// replacing any previous one. When the email is unknown it returns an
// empty token and no error so callers cannot probe for accounts.
func (m *Manager) CreatePasswordResetToken(email string) (string, error) {
	user, err := m.users.GetUserByEmail(email)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if user == nil {
		return "", nil
	}

	token, err := generateResetToken()
	if err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}

	row := &models.UserToken{
		UserID:    user.ID,
		Token:     token,
		TokenType: models.TokenTypePasswordReset,
		ExpiresAt: time.Now().UTC().Add(resetTokenTTL),
	}
	if err := m.tokens.ReplaceResetToken(row); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return token, nil
}

// VerifyResetToken checks that the token exists and has not expired,
// returning the owning user id.
func (m *Manager) VerifyResetToken(token string) (int64, error) {
	row, err := m.tokens.GetToken(token, models.TokenTypePasswordReset)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if row == nil {
		return 0, ErrTokenNotFound
	}
	if time.Now().UTC().After(row.ExpiresAt) {
		return 0, ErrTokenExpired
	}
	return row.UserID, nil
}

// ResetPassword redeems a reset token. The password overwrite and the
// token deletion happen in one transaction, so the token is single-use.
func (m *Manager) ResetPassword(token, newPassword string) error {
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}

	userID, err := m.VerifyResetToken(token)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), m.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := m.users.ResetPassword(userID, string(hash)); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}
