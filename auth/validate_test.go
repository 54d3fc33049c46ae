package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bookstore/auth"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantMsg  string
	}{
		{"too short", "Ab1", "at least 8 characters"},
		{"no uppercase", "alllowercase1", "uppercase letter"},
		{"no lowercase", "ALLUPPER1", "lowercase letter"},
		{"no digit", "NoDigitsHere", "digit"},
		{"valid", "Valid1234", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := auth.ValidatePassword(tc.password)
			if tc.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, auth.ErrWeakPassword)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestValidatePasswordRuleOrder(t *testing.T) {
	// A short password missing everything reports the length rule first.
	err := auth.ValidatePassword("a")
	assert.ErrorIs(t, err, auth.ErrWeakPassword)
	assert.Contains(t, err.Error(), "at least 8 characters")

	// Long enough but missing upper and digit reports uppercase first.
	err = auth.ValidatePassword("alllowercase")
	assert.Contains(t, err.Error(), "uppercase letter")
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"user@example.com", true},
		{"first.last+tag@sub.example.org", true},
		{`"john doe"@example.com`, true},
		{"plainaddress", false},
		{"@example.com", false},
		{"user@", false},
		{"Name Tag <user@example.com>", false},
		{"", false},
	}

	for _, tc := range tests {
		t.Run(tc.email, func(t *testing.T) {
			err := auth.ValidateEmail(tc.email)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, auth.ErrInvalidEmail)
			}
		})
	}
}
