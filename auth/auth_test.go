package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"bookstore/auth"
	"bookstore/config"
	"bookstore/models"
	"bookstore/repository"
)

// memStore is an in-memory stand-in for the user and token stores.
type memStore struct {
	nextID        int64
	users         []*models.User
	tokens        []*models.UserToken
	failLastLogin bool
}

func (s *memStore) CreateUser(user *models.User) error {
	for _, u := range s.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	s.nextID++
	user.ID = s.nextID
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	cp := *user
	s.users = append(s.users, &cp)
	return nil
}

func (s *memStore) GetUserByEmail(email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memStore) GetUserByID(id int64) (*models.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memStore) UpdateLastLogin(id int64) error {
	if s.failLastLogin {
		return errors.New("connection reset")
	}
	for _, u := range s.users {
		if u.ID == id {
			now := time.Now().UTC()
			u.LastLogin = &now
		}
	}
	return nil
}

func (s *memStore) ResetPassword(id int64, passwordHash string) error {
	for _, u := range s.users {
		if u.ID == id {
			u.PasswordHash = passwordHash
		}
	}
	s.deleteTokens(id, models.TokenTypePasswordReset)
	return nil
}

func (s *memStore) ReplaceResetToken(token *models.UserToken) error {
	s.deleteTokens(token.UserID, token.TokenType)
	cp := *token
	s.tokens = append(s.tokens, &cp)
	return nil
}

func (s *memStore) GetToken(token, tokenType string) (*models.UserToken, error) {
	for _, t := range s.tokens {
		if t.Token == token && t.TokenType == tokenType {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memStore) deleteTokens(userID int64, tokenType string) {
	kept := s.tokens[:0]
	for _, t := range s.tokens {
		if t.UserID != userID || t.TokenType != tokenType {
			kept = append(kept, t)
		}
	}
	s.tokens = kept
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 24,
		BcryptCost:         bcrypt.MinCost, // keep hashing fast in tests
	}
}

func newTestManager(t *testing.T) (*auth.Manager, *memStore) {
	t.Helper()
	store := &memStore{}
	return auth.NewManager(store, store, testConfig()), store
}

func TestRegisterSuccess(t *testing.T) {
	m, store := newTestManager(t)

	id, err := m.Register("new@example.com", "Valid1234", "New", "User")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	require.Len(t, store.users, 1)
	stored := store.users[0]
	assert.Equal(t, models.RoleUser, stored.Role)
	assert.NotEqual(t, "Valid1234", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Valid1234")))
}

func TestRegisterInvalidEmail(t *testing.T) {
	m, _ := newTestManager(t)

	_, err := m.Register("not-an-email", "Valid1234", "", "")
	assert.ErrorIs(t, err, auth.ErrInvalidEmail)
}

func TestRegisterWeakPassword(t *testing.T) {
	m, store := newTestManager(t)

	_, err := m.Register("weak@example.com", "short", "", "")
	assert.ErrorIs(t, err, auth.ErrWeakPassword)
	assert.Empty(t, store.users)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	m, store := newTestManager(t)

	_, err := m.Register("dup@example.com", "Valid1234", "", "")
	require.NoError(t, err)

	_, err = m.Register("dup@example.com", "Other5678", "", "")
	assert.ErrorIs(t, err, auth.ErrEmailTaken)
	assert.Len(t, store.users, 1)
}

func TestLoginSuccess(t *testing.T) {
	m, store := newTestManager(t)
	_, err := m.Register("login@example.com", "Valid1234", "Log", "In")
	require.NoError(t, err)

	token, user, err := m.Login("login@example.com", "Valid1234")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "login@example.com", user.Email)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotNil(t, store.users[0].LastLogin)
}

func TestLoginIndistinguishableFailures(t *testing.T) {
	m, _ := newTestManager(t)
	_, err := m.Register("real@example.com", "Valid1234", "", "")
	require.NoError(t, err)

	_, _, errWrongPassword := m.Login("real@example.com", "Wrong5678")
	_, _, errUnknownEmail := m.Login("ghost@example.com", "Valid1234")

	assert.ErrorIs(t, errWrongPassword, auth.ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknownEmail, auth.ErrInvalidCredentials)
	// The two failures must not be tellable apart.
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
}

func TestLoginLastLoginBestEffort(t *testing.T) {
	m, store := newTestManager(t)
	_, err := m.Register("best@example.com", "Valid1234", "", "")
	require.NoError(t, err)

	store.failLastLogin = true
	token, _, err := m.Login("best@example.com", "Valid1234")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestCreatePasswordResetTokenUnknownEmail(t *testing.T) {
	m, store := newTestManager(t)

	token, err := m.CreatePasswordResetToken("nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Empty(t, store.tokens)
}

func TestCreatePasswordResetToken(t *testing.T) {
	m, store := newTestManager(t)
	_, err := m.Register("reset@example.com", "Valid1234", "", "")
	require.NoError(t, err)

	token, err := m.CreatePasswordResetToken("reset@example.com")
	require.NoError(t, err)
	assert.Len(t, token, 64)
	for i := 0; i < len(token); i++ {
		c := token[i]
		alnum := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
		assert.True(t, alnum, "token byte %q is not alphanumeric", c)
	}
	require.Len(t, store.tokens, 1)
}

func TestCreatePasswordResetTokenReplacesPrevious(t *testing.T) {
	m, store := newTestManager(t)
	_, err := m.Register("replace@example.com", "Valid1234", "", "")
	require.NoError(t, err)

	first, err := m.CreatePasswordResetToken("replace@example.com")
	require.NoError(t, err)
	second, err := m.CreatePasswordResetToken("replace@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	require.Len(t, store.tokens, 1)
	assert.Equal(t, second, store.tokens[0].Token)

	_, err = m.VerifyResetToken(first)
	assert.ErrorIs(t, err, auth.ErrTokenNotFound)
}

func TestVerifyResetTokenExpired(t *testing.T) {
	m, store := newTestManager(t)
	store.tokens = append(store.tokens, &models.UserToken{
		UserID:    7,
		Token:     "expiredexpiredexpired",
		TokenType: models.TokenTypePasswordReset,
		ExpiresAt: time.Now().UTC().Add(-time.Hour),
	})

	_, err := m.VerifyResetToken("expiredexpiredexpired")
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestVerifyResetTokenUnknown(t *testing.T) {
	m, _ := newTestManager(t)

	_, err := m.VerifyResetToken("no-such-token")
	assert.ErrorIs(t, err, auth.ErrTokenNotFound)
}

func TestResetPasswordRoundTrip(t *testing.T) {
	m, _ := newTestManager(t)
	_, err := m.Register("roundtrip@example.com", "OldPass123", "", "")
	require.NoError(t, err)

	token, err := m.CreatePasswordResetToken("roundtrip@example.com")
	require.NoError(t, err)

	userID, err := m.VerifyResetToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), userID)

	require.NoError(t, m.ResetPassword(token, "NewPass456"))

	_, _, err = m.Login("roundtrip@example.com", "OldPass123")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, _, err = m.Login("roundtrip@example.com", "NewPass456")
	assert.NoError(t, err)

	// The token was consumed by the successful reset.
	err = m.ResetPassword(token, "Another789")
	assert.ErrorIs(t, err, auth.ErrTokenNotFound)
}

func TestResetPasswordWeakPassword(t *testing.T) {
	m, _ := newTestManager(t)
	_, err := m.Register("weakreset@example.com", "Valid1234", "", "")
	require.NoError(t, err)

	token, err := m.CreatePasswordResetToken("weakreset@example.com")
	require.NoError(t, err)

	err = m.ResetPassword(token, "weak")
	assert.ErrorIs(t, err, auth.ErrWeakPassword)

	// The failed attempt must not consume the token.
	_, err = m.VerifyResetToken(token)
	assert.NoError(t, err)
}
