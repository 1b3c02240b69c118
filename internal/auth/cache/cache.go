package cache

import (
	"context"
	"time"
)

// TokenCache is the transient store for short-lived auth tokens: email
// verification codes, password-reset tokens and the revoked-session
// blacklist. Entries expire on their own; there is no background sweep.
type TokenCache interface {
	// StoreVerificationCode keeps at most one live code per email; storing
	// again overwrites the previous code.
	StoreVerificationCode(ctx context.Context, email, code string, ttl time.Duration) error

	// ConsumeVerificationCode deletes the stored code if and only if it
	// equals the supplied one, in a single atomic step. Returns true when
	// the code matched and was consumed.
	ConsumeVerificationCode(ctx context.Context, email, code string) (bool, error)

	// StoreResetToken maps a reset token back to the email it was issued for.
	StoreResetToken(ctx context.Context, token, email string, ttl time.Duration) error

	// ConsumeResetToken atomically fetches and deletes the mapping. Returns
	// the email, or "" if the token is unknown or expired.
	ConsumeResetToken(ctx context.Context, token string) (string, error)

	// BlacklistSession marks a session token revoked for the remainder of
	// its lifetime.
	BlacklistSession(ctx context.Context, token string, ttl time.Duration) error

	IsSessionBlacklisted(ctx context.Context, token string) (bool, error)
}
