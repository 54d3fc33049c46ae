package auth

import (
	"fmt"
	"net/mail"
)

// ValidateEmail checks that the string parses as a single address with
// no display name. Case is preserved; no normalization happens here.
func ValidateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: %q is not a valid email address", ErrInvalidEmail, email)
	}
	return nil
}

// ValidatePassword enforces the password strength rules. Rules are
// checked in a fixed order (length, uppercase, lowercase, digit) and
// the first failure wins.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters long", ErrWeakPassword)
	}
	if !containsRange(password, 'A', 'Z') {
		return fmt.Errorf("%w: password must contain at least one uppercase letter", ErrWeakPassword)
	}
	if !containsRange(password, 'a', 'z') {
		return fmt.Errorf("%w: password must contain at least one lowercase letter", ErrWeakPassword)
	}
	if !containsRange(password, '0', '9') {
		return fmt.Errorf("%w: password must contain at least one digit", ErrWeakPassword)
	}
	return nil
}

func containsRange(s string, lo, hi byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= lo && s[i] <= hi {
			return true
		}
	}
	return false
}
