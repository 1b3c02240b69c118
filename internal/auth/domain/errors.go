package domain

import "errors"

// Stable error kinds surfaced by the auth service. Delivery maps them to
// HTTP statuses; no internal detail leaks through them.
var (
	// ErrInvalidEmail and friends reject malformed signup input.
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrWeakPassword     = errors.New("password does not meet the security policy")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")

	// ErrEmailTaken is returned when a signup collides with an existing account.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password so a
	// caller cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotVerified rejects logins on accounts that never confirmed their email.
	ErrNotVerified = errors.New("email not verified")

	// ErrInvalidToken rejects unknown, expired or already-consumed single-use
	// tokens (verification codes, reset tokens).
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrUnauthorized rejects missing, malformed, expired or revoked session tokens.
	ErrUnauthorized = errors.New("not authenticated")

	ErrUserNotFound = errors.New("user not found")
)
