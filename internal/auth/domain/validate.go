package domain

import (
	"net/mail"
	"strings"
	"unicode"
)

const passwordSpecials = `!@#$%^&*(),.?":{}|<>`

// ValidatePassword enforces the signup password policy: at least 8
// characters with one uppercase letter, one lowercase letter, one digit and
// one special character.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}

	if !upper || !lower || !digit || !special {
		return ErrWeakPassword
	}
	return nil
}

// ValidateEmail checks the address is syntactically valid and a bare
// address, not a display-name form.
func ValidateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}
